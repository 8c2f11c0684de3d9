package recipepdf

import (
	"strconv"
	"strings"
)

// Markdown writes blocks back in the markdown subset Classify reads.
// Blocks are separated by a blank line, except a MetaBlock that directly
// follows the Title, so Classify(Markdown(b)) reproduces b.
func Markdown(blocks []Block) string {
	var sb strings.Builder

	for i, blk := range blocks {
		if i > 0 && !metaAfterTitle(blocks[i-1], blk) {
			sb.WriteByte('\n')
		}

		switch b := blk.(type) {
		case Title:
			sb.WriteString("# " + b.Text + "\n")
		case MetaBlock:
			for _, e := range b.Entries {
				sb.WriteString(e.String() + "\n")
			}
		case Heading:
			if b.Text == "" {
				sb.WriteString(bareHeading + "\n")
				break
			}
			sb.WriteString(headingMarker + b.Text + "\n")
		case Paragraph:
			sb.WriteString(b.Text + "\n")
		case List:
			for n, item := range b.Items {
				if b.Kind == Numbered {
					sb.WriteString(strconv.Itoa(n+1) + ". " + item + "\n")
				} else {
					sb.WriteString(bulletMarker + item + "\n")
				}
			}
		}
	}

	return sb.String()
}

func metaAfterTitle(prev, cur Block) bool {
	_, isTitle := prev.(Title)
	_, isMeta := cur.(MetaBlock)
	return isTitle && isMeta
}
