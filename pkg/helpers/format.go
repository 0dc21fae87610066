package helpers

import (
	"bytes"
	"strings"
)

// YAMLDocuments splits a multi-document yaml stream, dropping empty documents.
func YAMLDocuments(data []byte) [][]byte {
	docs := [][]byte{}

	for _, part := range bytes.Split(data, []byte("\n---")) {
		if strings.TrimSpace(string(part)) == "" {
			continue
		}

		docs = append(docs, part)
	}

	return docs
}
