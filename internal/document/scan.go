package document

import (
	"bytes"
	"fmt"

	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Scan parses a markdown document and projects its fenced code blocks into
// ordered Block records. Every fence is yielded, including tangle: no ones;
// filtering is a downstream concern, so scanning stays a pure projection of
// the document. Unnamed blocks get a synthesized `block-<n>` name, with n a
// 1-based counter over all collected blocks.
func Scan(path string, src []byte) (*Document, error) {
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var blocks []Block
	counter := 0
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fence, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		counter++

		info := ""
		if fence.Info != nil {
			info = string(fence.Info.Segment.Value(src))
		}
		lang, name, params := parseInfo(info)
		if name == "" {
			name = fmt.Sprintf("block-%d", counter)
		}

		var body bytes.Buffer
		lines := fence.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			body.Write(seg.Value(src))
		}

		line := 1
		switch {
		case fence.Info != nil:
			line = lineAt(src, fence.Info.Segment.Start)
		case lines.Len() > 0:
			line = lineAt(src, lines.At(0).Start) - 1
		}

		blocks = append(blocks, Block{
			Language: lang,
			Name:     name,
			Params:   params,
			Body:     body.String(),
			Link:     Link{Path: path, Line: line},
		})
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", path, err)
	}

	return New(path, blocks), nil
}

// ScanFile reads path from fs and scans it.
func ScanFile(fs afero.Fs, path string) (*Document, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Scan(path, src)
}

func lineAt(src []byte, offset int) int {
	if offset > len(src) {
		offset = len(src)
	}
	return bytes.Count(src[:offset], []byte("\n")) + 1
}
