package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces added per nesting level.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting nesting depth, for embedding output inside
// already indented text.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func MaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
