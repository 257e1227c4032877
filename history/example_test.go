package history_test

import (
	"fmt"
	"log"

	"github.com/Micah-Ribbens/Game-Qu/history"
)

func ExampleKeeper() {
	k := history.NewKeeper(2)
	for _, x := range []float64{0, 10, 30} {
		k.AdvanceFrame()
		k.Record("x", x)
	}
	prev, _ := k.Get("x", 1)
	fmt.Println(prev)
	_, err := k.Get("x", 3)
	fmt.Println(err)
	// Output:
	// 10
	// history: no value for "x" 3 frames before frame 3
}

func ExampleVelocityCalculator() {
	k := history.NewKeeper(2)
	vc, err := history.NewVelocityCalculator(k, 0.1)
	if err != nil {
		log.Fatal(err)
	}
	k.Record("x", 0)
	k.AdvanceFrame()
	k.Record("x", 10)
	v, _ := vc.Velocity("x")
	fmt.Printf("%.1f\n", v)
	// Output: 100.0
}
