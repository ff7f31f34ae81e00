// Package content turns free-text lesson bodies into an ordered sequence of
// typed display blocks. Parsing is a pure function of the input text; the
// presentation layer decides how each block type is rendered.
package content

import "strings"

// BlockType identifies how a block should be rendered.
type BlockType string

const (
	Heading      BlockType = "heading"
	BulletList   BlockType = "bulletList"
	KeyPrinciple BlockType = "keyPrinciple"
	Paragraph    BlockType = "paragraph"
)

// Block is one display unit of a lesson. Items is set only for BulletList
// blocks; Text is set for everything else.
type Block struct {
	Type  BlockType
	Text  string
	Items []string
}

// headingMaxLen bounds the heading heuristic: a short line ending with a
// colon reads as a section heading, a long one as ordinary prose.
const headingMaxLen = 50

// Parse splits lesson content into blocks. Blank lines are ignored;
// consecutive bullet lines ("•" or "-") collapse into a single BulletList;
// short lines ending with ":" become headings; lines mentioning a key
// principle or importance are called out; everything else is a paragraph.
func Parse(text string) []Block {
	if text == "" {
		return []Block{}
	}

	blocks := make([]Block, 0)
	var bullets []string

	flushBullets := func() {
		if len(bullets) > 0 {
			blocks = append(blocks, Block{Type: BulletList, Items: bullets})
			bullets = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "-") {
			item := strings.TrimPrefix(strings.TrimPrefix(trimmed, "•"), "-")
			bullets = append(bullets, strings.TrimSpace(item))
			continue
		}

		flushBullets()

		lower := strings.ToLower(trimmed)
		switch {
		case strings.HasSuffix(trimmed, ":") && len(trimmed) < headingMaxLen:
			// Only the first colon is dropped, matching how multi-colon
			// headings have always displayed.
			blocks = append(blocks, Block{Type: Heading, Text: strings.Replace(trimmed, ":", "", 1)})
		case strings.Contains(lower, "key principle") || strings.Contains(lower, "important"):
			blocks = append(blocks, Block{Type: KeyPrinciple, Text: trimmed})
		default:
			blocks = append(blocks, Block{Type: Paragraph, Text: trimmed})
		}
	}

	flushBullets()
	return blocks
}
