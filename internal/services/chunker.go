package services

import (
	"strings"
	"unicode/utf8"
)

const (
	defaultChunkSize    = 800
	defaultChunkOverlap = 100
)

// TextChunker splits CV text into overlapping passages for embedding.
type TextChunker interface {
	Chunk(text string) []string
}

type textChunker struct {
	size    int
	overlap int
}

func NewTextChunker(size, overlap int) TextChunker {
	if size <= 0 {
		size = defaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = size / 4
	}
	return &textChunker{size: size, overlap: overlap}
}

// Chunk packs blank-line separated sections into passages of at most size
// characters. Oversized sections are split on sentence boundaries. A new
// passage starts with the tail of the previous one when that still fits.
func (tc *textChunker) Chunk(text string) []string {
	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		chunks = append(chunks, current.String())
		tail := lastRunes(current.String(), tc.overlap)
		current.Reset()
		current.WriteString(tail)
	}

	add := func(piece, sep string) {
		pieceLen := utf8.RuneCountInString(piece) + len(sep)
		if utf8.RuneCountInString(current.String())+pieceLen > tc.size {
			flush()
			if utf8.RuneCountInString(current.String())+pieceLen > tc.size {
				current.Reset()
			}
		}
		if current.Len() > 0 {
			current.WriteString(sep)
		}
		current.WriteString(piece)
	}

	for _, section := range strings.Split(normalizeNewlines(text), "\n\n") {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}

		if utf8.RuneCountInString(section) <= tc.size {
			add(section, "\n\n")
			continue
		}

		for _, sentence := range splitSentences(section) {
			for _, piece := range hardSplit(sentence, tc.size-tc.overlap-1) {
				add(piece, " ")
			}
		}
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// splitSentences keeps the terminating punctuation on each sentence.
func splitSentences(text string) []string {
	var out []string
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			if s := strings.TrimSpace(text[start : i+utf8.RuneLen(r)]); s != "" {
				out = append(out, s)
			}
			start = i + utf8.RuneLen(r)
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

func hardSplit(s string, n int) []string {
	if n <= 0 {
		n = 1
	}
	runes := []rune(s)
	if len(runes) <= n {
		return []string{s}
	}
	var out []string
	for len(runes) > 0 {
		end := n
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[:end]))
		runes = runes[end:]
	}
	return out
}

func lastRunes(text string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[len(runes)-n:])
}
