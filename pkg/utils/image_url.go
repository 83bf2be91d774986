package utils

import (
	"fmt"
	"math/rand"
	"net/url"
)

const (
	imageBaseURL = "https://image.pollinations.ai/prompt/"
	imageWidth   = 600
	imageHeight  = 400
)

// ImagePromptURL builds a deterministic image-generation reference for a text
// prompt. The seed keeps imagery visually distinct across items that share a
// similar prompt; the renderer fetches the image lazily.
func ImagePromptURL(prompt string, seed int) string {
	return fmt.Sprintf("%s%s?width=%d&height=%d&nologo=true&seed=%d",
		imageBaseURL, url.PathEscape(prompt), imageWidth, imageHeight, seed)
}

// RandomImageSeed is used for chat-suggested items, which have no stable
// position in a generated set.
func RandomImageSeed() int {
	return rand.Intn(100000)
}
