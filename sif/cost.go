package sif

//*******************************************
// cost
//*******************************************

// Generalized cost together with the real elapsed time in seconds. Only Cost
// takes part in ordering, Secs is carried along for arrival times.
type Cost struct {
	Cost float32
	Secs float32
}

func NewCost(cost, secs float32) Cost {
	return Cost{Cost: cost, Secs: secs}
}

func (self Cost) Add(other Cost) Cost {
	return Cost{Cost: self.Cost + other.Cost, Secs: self.Secs + other.Secs}
}
func (self Cost) Sub(other Cost) Cost {
	return Cost{Cost: self.Cost - other.Cost, Secs: self.Secs - other.Secs}
}
func (self Cost) Scale(factor float32) Cost {
	return Cost{Cost: self.Cost * factor, Secs: self.Secs * factor}
}
func (self Cost) Less(other Cost) bool {
	return self.Cost < other.Cost
}
