package properties

import "fmt"

// LengthPercentageAutoKind is the tag of a [LengthPercentageAuto].
type LengthPercentageAutoKind uint8

const (
	LPALength LengthPercentageAutoKind = iota
	LPAPercentage
	LPAAuto
)

// LengthPercentageAuto is a length, a percentage or the 'auto' keyword.
// Value is not meaningful for [LPAAuto].
type LengthPercentageAuto struct {
	Kind  LengthPercentageAutoKind
	Value Fl
}

// NewLength returns an absolute length.
func NewLength(v Fl) LengthPercentageAuto { return LengthPercentageAuto{LPALength, v} }

// NewPercentage returns a percentage, where 50 means 50%.
func NewPercentage(v Fl) LengthPercentageAuto { return LengthPercentageAuto{LPAPercentage, v} }

// AutoLPA returns the 'auto' keyword.
func AutoLPA() LengthPercentageAuto { return LengthPercentageAuto{Kind: LPAAuto} }

func (v LengthPercentageAuto) IsAuto() bool { return v.Kind == LPAAuto }

func (v LengthPercentageAuto) String() string {
	switch v.Kind {
	case LPALength:
		return fmt.Sprintf("%gpx", v.Value)
	case LPAPercentage:
		return fmt.Sprintf("%g%%", v.Value)
	case LPAAuto:
		return "auto"
	default:
		return "<invalid length-percentage-auto>"
	}
}

// LengthPercentageKind is the tag of a [LengthPercentage].
type LengthPercentageKind uint8

const (
	LPLength LengthPercentageKind = iota
	LPPercentage
)

// LengthPercentage is a length or a percentage, used where CSS
// forbids 'auto' (padding, min and max sizes, origins).
type LengthPercentage struct {
	Kind  LengthPercentageKind
	Value Fl
}

func NewLP(kind LengthPercentageKind, v Fl) LengthPercentage { return LengthPercentage{kind, v} }

// ToLPA widens the value, which is always possible.
func (v LengthPercentage) ToLPA() LengthPercentageAuto {
	if v.Kind == LPPercentage {
		return NewPercentage(v.Value)
	}
	return NewLength(v.Value)
}

func (v LengthPercentage) String() string {
	switch v.Kind {
	case LPLength:
		return fmt.Sprintf("%gpx", v.Value)
	case LPPercentage:
		return fmt.Sprintf("%g%%", v.Value)
	default:
		return "<invalid length-percentage>"
	}
}

// NumberAutoKind is the tag of a [NumberAuto].
type NumberAutoKind uint8

const (
	NANumber NumberAutoKind = iota
	NAAuto
)

// NumberAuto is a unitless number or 'auto', as used by z-index.
type NumberAuto struct {
	Kind  NumberAutoKind
	Value Fl
}

func NewNumber(v Fl) NumberAuto { return NumberAuto{NANumber, v} }

func AutoNumber() NumberAuto { return NumberAuto{Kind: NAAuto} }

func (v NumberAuto) IsAuto() bool { return v.Kind == NAAuto }

func (v NumberAuto) String() string {
	switch v.Kind {
	case NANumber:
		return fmt.Sprintf("%g", v.Value)
	case NAAuto:
		return "auto"
	default:
		return "<invalid number-auto>"
	}
}
