// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package semf

import "github.com/pdiddy/nuclide-engine/pkg/types"

// CNOCycle returns the six-step carbon-nitrogen-oxygen burning chain
// with its per-reaction Q values.
func CNOCycle() types.StellarProcess {
	reactions := []types.StellarReaction{
		{Reaction: "12C + p -> 13N + gamma", QMeV: 1.94},
		{Reaction: "13N -> 13C + e+ + nu_e", QMeV: 2.22},
		{Reaction: "13C + p -> 14N + gamma", QMeV: 7.55},
		{Reaction: "14N + p -> 15O + gamma", QMeV: 7.30},
		{Reaction: "15O -> 15N + e+ + nu_e", QMeV: 2.76},
		{Reaction: "15N + p -> 12C + 4He", QMeV: 4.96},
	}
	return types.StellarProcess{
		Name:        "cno-cycle",
		NetReaction: "4p -> 4He + 2e+ + 2nu_e",
		Reactions:   reactions,
		TotalQMeV:   sumQ(reactions),
	}
}

// TripleAlpha returns the helium-burning chain. The first step is
// endothermic; the chain only proceeds through the 8Be resonance.
func TripleAlpha() types.StellarProcess {
	reactions := []types.StellarReaction{
		{Reaction: "4He + 4He -> 8Be", QMeV: -0.092},
		{Reaction: "8Be + 4He -> 12C", QMeV: 7.367},
	}
	return types.StellarProcess{
		Name:        "triple-alpha",
		NetReaction: "3 4He -> 12C",
		Reactions:   reactions,
		TotalQMeV:   sumQ(reactions),
	}
}

func sumQ(rs []types.StellarReaction) (total float64) {
	for _, r := range rs {
		total += r.QMeV
	}
	return total
}
