package core

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

var ErrUnknownArchetype = errors.New("unknown archetype")

// Archetype selects one of the biological network families the engine
// can synthesize.
type Archetype string

const (
	ArchetypeVascular    Archetype = "vascular"
	ArchetypeNeural      Archetype = "neural"
	ArchetypeCirculatory Archetype = "circulatory"
	ArchetypeMycelial    Archetype = "mycelial"
)

// AllArchetypes lists every supported archetype in the order used for
// side-by-side comparison.
func AllArchetypes() []Archetype {
	return []Archetype{
		ArchetypeVascular,
		ArchetypeNeural,
		ArchetypeCirculatory,
		ArchetypeMycelial,
	}
}

// Blueprint is the per-archetype capability pair. Topology synthesis
// is split into node generation and edge generation so each family
// keeps its role table, capacity table and connection rules in one
// place; adding an archetype means adding one Blueprint.
type Blueprint interface {
	// GenerateNodes builds n nodes with archetype-specific roles,
	// positions and capacities. damageRate is a percentage in
	// [0,100]; each node draws its damage flag independently.
	GenerateNodes(n int, damageRate float64, rng *rand.Rand) []Node

	// GenerateEdges derives the directed edge list from a node set
	// previously produced by GenerateNodes of the same blueprint.
	GenerateEdges(nodes []Node) []Edge

	// Roles returns the closed role set this archetype generates.
	Roles() []NodeRole
}

// BlueprintFor returns the Blueprint implementing the given archetype.
func BlueprintFor(a Archetype) (Blueprint, error) {
	switch a {
	case ArchetypeVascular:
		return vascularBlueprint{}, nil
	case ArchetypeNeural:
		return neuralBlueprint{}, nil
	case ArchetypeCirculatory:
		return circulatoryBlueprint{}, nil
	case ArchetypeMycelial:
		return mycelialBlueprint{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownArchetype, a)
}

// ParseArchetype maps free-form input (CLI flags, scenario files) to
// an Archetype. Matching is case-insensitive.
func ParseArchetype(s string) (Archetype, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vascular", "plant":
		return ArchetypeVascular, nil
	case "neural":
		return ArchetypeNeural, nil
	case "circulatory":
		return ArchetypeCirculatory, nil
	case "mycelial", "fungal":
		return ArchetypeMycelial, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownArchetype, s)
}
