// Command transfinite evaluates multi-sided transfinite surfaces. It reads
// curve loops (.lop) and generalized Bézier patches (.gbp) and writes
// tessellated OBJ meshes.
package main

func main() {
	Execute()
}
