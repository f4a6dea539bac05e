package main

import "github.com/jeffreyruoss/run-fuel-calculator/cmd/fuelplan"

func main() {
	fuelplan.Execute()
}
