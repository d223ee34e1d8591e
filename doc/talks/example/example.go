package main

import (
	"fmt"

	"github.com/joamaki/syncobs/stream"
)

// printer is an observer that prints what it receives.
type printer struct{}

func (printer) Next(x int)      { fmt.Printf("%d\n", x) }
func (printer) Error(err error) { fmt.Printf("error: %s\n", err) }
func (printer) Complete()       { fmt.Println("complete!") }

func main() {
	ten := stream.Of[int, error](10)

	// A transform stage sits between the source and the observer and
	// decides what to forward.
	twenty := ten.Map(stream.Mapping[int, error](func(x int) int { return x * 2 }))

	// Subscribing runs the whole chain before returning.
	sub := twenty.Subscribe(printer{})
	sub.Unsubscribe()

	// 'ten' has completed, so this prints nothing.
	twenty.Subscribe(printer{})
}
