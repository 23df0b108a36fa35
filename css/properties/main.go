// Package properties defines the computed style of an element: the typed,
// compact representation of its CSS properties once the cascade and
// inheritance have run, and before layout.
//
// The value model has two tiers :
//   - small tagged values (LengthPercentageAuto, LengthPercentage, NumberAuto),
//     keyword enumerations and composite records (LineHeight, VerticalAlign),
//   - the ComputedValues aggregate, holding one value per property.
//
// Percentages are resolved against a base supplied by the layout, see
// [LengthPercentageAuto.Resolve] and [LengthPercentage.Resolve].
package properties

import "github.com/benoitkugler/rstyle/utils"

type Fl = utils.Fl
