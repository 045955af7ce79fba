// Package ai provides OCR engines backed by hosted vision models. They plug
// into the same registry as the local Tesseract engine and are useful when a
// region is too noisy for classical OCR.
package ai

import "strings"

// transcribePrompt makes a chat vision model behave like a plain OCR engine.
const transcribePrompt = `You are an OCR engine. Read the text visible in this image and return it exactly as written.
Return ONLY the text content: no quotes, no markdown, no explanations.
If the image shows a single number, return just that number.`

// cleanResponse strips the wrapping chat models tend to add around short
// answers (markdown code fences, quotes, stray whitespace).
func cleanResponse(s string) string {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "```text", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.Trim(cleaned, "\"'`")
	return strings.TrimSpace(cleaned)
}

// sniffImageFormat detects the encoded image format from magic bytes.
// Unrecognized data is reported as "png", the format local crops produce.
func sniffImageFormat(data []byte) string {
	switch {
	case len(data) >= 8 && string(data[:8]) == "\x89PNG\r\n\x1a\n":
		return "png"
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return "jpeg"
	case len(data) >= 6 && (string(data[:6]) == "GIF87a" || string(data[:6]) == "GIF89a"):
		return "gif"
	case len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return "webp"
	}
	return "png"
}
