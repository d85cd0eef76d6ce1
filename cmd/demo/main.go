package main

import (
	"fmt"
	"os"

	"github.com/SIDD017/blenlib"
	"gopkg.in/yaml.v3"
)

func main() {
	fmt.Println("== inline phase ==")
	v := blenlib.New[int]()
	for i := 1; i <= blenlib.InlineCapacity; i++ {
		v.Append(i * 10)
	}
	v.DebugDump(os.Stdout)
	fmt.Printf("inline: %v\n\n", v.IsInline())

	fmt.Println("== growth to heap ==")
	v.Append(50)
	v.DebugDump(os.Stdout)
	fmt.Printf("inline: %v (capacity doubled, not incremented)\n\n", v.IsInline())

	fmt.Println("== unordered removal ==")
	fmt.Printf("before: %v\n", v.Slice())
	v.RemoveAndReorder(1)
	fmt.Printf("after RemoveAndReorder(1): %v\n\n", v.Slice())

	fmt.Println("== move adoption ==")
	w := blenlib.New[int]()
	w.MoveFrom(v)
	fmt.Printf("destination: %s\n", w.Stats())
	fmt.Printf("source:      %s\n\n", v.Stats())

	fmt.Println("== yaml snapshot ==")
	data, err := yaml.Marshal(w)
	if err != nil {
		panic(err)
	}
	os.Stdout.Write(data)
}
