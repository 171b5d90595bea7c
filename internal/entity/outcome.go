package entity

type Result int

const (
	ResultOngoing Result = iota
	ResultWin
	ResultDraw
)

func (that Result) String() string {
	switch that {
	case ResultWin:
		return "win"
	case ResultDraw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Outcome is the evaluation of a board. Winner is set only for ResultWin.
type Outcome struct {
	Result Result
	Winner Mark
}

func Ongoing() Outcome {
	return Outcome{Result: ResultOngoing}
}

func Win(mark Mark) Outcome {
	return Outcome{Result: ResultWin, Winner: mark}
}

func Draw() Outcome {
	return Outcome{Result: ResultDraw}
}

func (that Outcome) IsTerminal() bool {
	return that.Result != ResultOngoing
}
