package model

import "github.com/habeanf/yap-ccg/catcombination"

func fixtureDep() catcombination.FilledDependency {
	return catcombination.NewDependency(1, 1, 0, 0).Fill(2)
}
