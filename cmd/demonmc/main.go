// demonmc runs microcanonical demon Monte Carlo simulations of the 2D
// Ising model.
package main

func main() {
	Execute()
}
