package domain

type Summary struct {
	Checked  int `json:"checked"`
	Prime    int `json:"prime"`
	NotPrime int `json:"notPrime"`
	Errors   int `json:"errors"`
}

func Summarize(all []Outcome) Summary {
	s := Summary{Checked: len(all)}
	for _, o := range all {
		switch {
		case o.Failed():
			s.Errors++
		case o.IsPrime:
			s.Prime++
		default:
			s.NotPrime++
		}
	}
	return s
}
