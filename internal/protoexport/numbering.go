package protoexport

import (
	"hash/fnv"
	"sort"

	"github.com/jhump/protoreflect/v2/protobuilder"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func allocateFieldNumbers(fieldBuilders []*protobuilder.FieldBuilder) {
	names := make([]string, len(fieldBuilders))
	for i, fb := range fieldBuilders {
		names[i] = string(fb.Name())
	}
	for i, n := range tagNumbers(names) {
		fieldBuilders[i].SetNumber(protoreflect.FieldNumber(n))
	}
}

func allocateEnumValueNumbers(enumValueBuilders []*protobuilder.EnumValueBuilder) {
	names := make([]string, len(enumValueBuilders))
	for i, evb := range enumValueBuilders {
		names[i] = string(evb.Name())
	}
	for i, n := range tagNumbers(names) {
		enumValueBuilders[i].SetNumber(protoreflect.EnumNumber(n))
	}
}

const (
	maxTag           = 31767
	reservedTagStart = 19000
	reservedTagEnd   = 19999
)

// tagNumbers assigns stable numbers in 1..maxTag: FNV-1a of the name picks the
// start and collisions probe linearly, skipping the reserved block. Names are
// processed sorted so the result does not depend on declaration order.
func tagNumbers(names []string) []int {
	if len(names) == 0 {
		return nil
	}
	order := make([]int, len(names))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return names[order[a]] < names[order[b]] })

	out := make([]int, len(names))
	used := make(map[int]struct{}, len(names))
	for _, idx := range order {
		cand := int(fnv32(names[idx])%maxTag) + 1
		for probes := 0; ; probes++ {
			if probes > maxTag {
				panic("protoexport: exhausted tag space")
			}
			if cand >= reservedTagStart && cand <= reservedTagEnd {
				cand = reservedTagEnd + 1
			}
			if _, taken := used[cand]; !taken {
				break
			}
			cand++
			if cand > maxTag {
				cand = 1
			}
		}
		used[cand] = struct{}{}
		out[idx] = cand
	}
	return out
}

func fnv32(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
