package header_test

import (
	"fmt"

	"github.com/gogama/streamheader/box"
	"github.com/gogama/streamheader/header"
	"github.com/gogama/streamheader/options"
	"github.com/paulmach/orb"
)

func ExampleHeader_JoinedBoxes() {
	h := header.New(options.Pair{Key: "generator", Value: "example"}).
		AddBox(box.New(orb.Point{-1, -1}, orb.Point{1, 1})).
		AddBox(box.New(orb.Point{0, 0}, orb.Point{2, 2}))

	fmt.Println(h.Box())
	fmt.Println(h.JoinedBoxes())
	fmt.Println(h.GetOr("generator", "unknown"))
	// Output:
	// (-1,-1,1,1)
	// (-1,-1,2,2)
	// example
}

func ExampleHeader_Box_empty() {
	var h header.Header
	fmt.Println(h.Box().Valid(), h.JoinedBoxes().Valid(), len(h.Boxes()))
	// Output: false false 0
}
