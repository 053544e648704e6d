package types

// MarkAsConvertible adds a direct ConversionEdge from from to to, carrying
// mode. Conversion is not transitive at the edge level; Assignability's
// path search is what makes implicit conversions compose.
func (e *Engine) MarkAsConvertible(from, to *Type, mode ConversionMode) {
	e.graph.AddEdge(&Edge{Label: EdgeConversion, From: from, To: to, Payload: mode})
	e.invalidateSubtypeCache(nil)
}

// IsConvertible returns the strongest mode of the direct ConversionEdge
// from from to to, or ConversionNone if there is none.
func (e *Engine) IsConvertible(from, to *Type) ConversionMode {
	strongest := ConversionNone

	for _, edge := range e.graph.Outgoing(from, EdgeConversion) {
		if edge.To.id != to.id {
			continue
		}

		mode, _ := edge.Payload.(ConversionMode)
		if conversionRank(mode) > conversionRank(strongest) {
			strongest = mode
		}
	}

	return strongest
}

func conversionRank(m ConversionMode) int {
	switch m {
	case ConversionExplicit:
		return 2
	case ConversionImplicitExplicit:
		return 1
	default:
		return 0
	}
}
