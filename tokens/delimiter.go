package tokens

import "fmt"

type Bracket uint8

const (
	Curly Bracket = iota
	Square
	Parentheses
)

type Orientation uint8

const (
	Open Orientation = iota
	Close
)

type Delimiter struct {
	Bracket     Bracket
	Orientation Orientation
}

var delimiterSpellings = [...][2]string{
	Curly:       {Open: "{", Close: "}"},
	Square:      {Open: "[", Close: "]"},
	Parentheses: {Open: "(", Close: ")"},
}

func (d Delimiter) String() string {
	if int(d.Bracket) < len(delimiterSpellings) && d.Orientation <= Close {
		return delimiterSpellings[d.Bracket][d.Orientation]
	}
	return fmt.Sprintf("Delimiter(%d, %d)", d.Bracket, d.Orientation)
}

func Delimiters() []Delimiter {
	var ret []Delimiter
	for bracket := range delimiterSpellings {
		for _, orientation := range []Orientation{Open, Close} {
			ret = append(ret, Delimiter{
				Bracket:     Bracket(bracket),
				Orientation: orientation,
			})
		}
	}
	return ret
}
