package generator

// DefaultDataset returns the fixed demonstration dataset in wire form. The
// quantities sum to 60, 120 once doubled by the default transformer chain.
func DefaultDataset() []string {
	return []string{
		"apple,5,red",
		"banana,7,yellow",
		"cherry,4,red",
		"mango,12,orange",
		"grape,9,purple",
		"orange,15,orange",
		"kiwi,8,green",
	}
}
