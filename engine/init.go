package engine

import "github.com/roe680/bitothello/othellomg"

// cornerOf maps the C- and X-squares around a corner to that corner.
// Every other square maps to NoSquare.
var cornerOf [64]othellomg.Square

var corners = [4]othellomg.Square{0, 7, 56, 63}

func init() {
	initCornerRegions()
}

func initCornerRegions() {
	for sq := range cornerOf {
		cornerOf[sq] = othellomg.NoSquare
	}
	for _, c := range corners {
		around := othellomg.NeighbourMask(c)
		for around != 0 {
			sq := othellomg.PopLSB(&around)
			cornerOf[sq] = c
		}
	}
}
