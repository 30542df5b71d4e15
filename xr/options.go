package xr

// StructureType identifies a descriptor in a next chain
type StructureType int32

const (
	TypeSwapchainCreateInfo               StructureType = 9
	TypeFoveationProfileCreateInfoFB      StructureType = 1000114000
	TypeSwapchainCreateInfoFoveationFB    StructureType = 1000114001
	TypeSwapchainStateFoveationFB         StructureType = 1000114002
	TypeFoveationLevelProfileCreateInfoFB StructureType = 1000115000
)

// Options is a descriptor that can be linked into a next chain. Wrappers compose
// descriptors by installing the chain they were handed as their own successor.
type Options interface {
	StructureType() StructureType
	NextInChain() Options
}

// NextOptions is embedded in descriptors to carry the chain successor
type NextOptions struct {
	Next Options
}

func (o NextOptions) NextInChain() Options {
	return o.Next
}

// WalkChain calls visit for each descriptor in the chain, starting with head, until visit
// returns false or the chain ends
func WalkChain(head Options, visit func(options Options) bool) {
	for current := head; current != nil; current = current.NextInChain() {
		if !visit(current) {
			return
		}
	}
}

// FindInChain returns the first descriptor in the chain with the requested structure type
func FindInChain(head Options, structureType StructureType) (Options, bool) {
	var found Options
	WalkChain(head, func(options Options) bool {
		if options.StructureType() == structureType {
			found = options
			return false
		}
		return true
	})

	return found, found != nil
}

// ChainLength returns the number of descriptors in the chain
func ChainLength(head Options) int {
	count := 0
	WalkChain(head, func(options Options) bool {
		count++
		return true
	})
	return count
}
