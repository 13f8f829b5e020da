package domain

// BlockType classifies a schedule block. It drives display color and icon
// only; no scheduling logic branches on it.
type BlockType string

const (
	BlockFocus   BlockType = "FOCUS"
	BlockBreak   BlockType = "BREAK"
	BlockRoutine BlockType = "ROUTINE" // sleep, meals, commute
	BlockSocial  BlockType = "SOCIAL"
	BlockAdmin   BlockType = "ADMIN"
)

// ValidBlockTypes is the canonical set of accepted block type strings.
var ValidBlockTypes = map[BlockType]bool{
	BlockFocus:   true,
	BlockBreak:   true,
	BlockRoutine: true,
	BlockSocial:  true,
	BlockAdmin:   true,
}

// AllBlockTypes lists the block types in display order.
var AllBlockTypes = []BlockType{
	BlockFocus, BlockBreak, BlockRoutine, BlockSocial, BlockAdmin,
}

// ParseBlockType returns the BlockType for s, falling back to BlockFocus
// when s is not a recognized type.
func ParseBlockType(s string) BlockType {
	t := BlockType(s)
	if ValidBlockTypes[t] {
		return t
	}
	return BlockFocus
}
