package inversion_test

import (
	"fmt"

	"github.com/katalvlaran/lightsout/inversion"
)

// ExampleCache_Product finds the top-row presses that clear a 3×3 board
// whose last row, after chasing, is "1 0 0".
func ExampleCache_Product() {
	c := inversion.New()
	presses, err := c.Product([]int{1, 0, 0}, 3, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(presses)
	// Output: [1 1 0]
}
