package kernel

import "fmt"

func ExampleTricube() {
	fmt.Printf("%.4f %.4f %.4f\n", Tricube(0), Tricube(0.5), Tricube(1))
	// Output:
	// 1.0000 0.6699 0.0000
}

func ExampleGenerate() {
	k := Generate(TypeBisquare, 5)
	fmt.Printf("%.4f %.4f %.4f %.4f %.4f\n", k[0], k[1], k[2], k[3], k[4])
	// Output:
	// 0.0000 0.5625 1.0000 0.5625 0.0000
}

func ExampleInfo() {
	m := Info(TypeTricube)
	fmt.Printf("%s %.4f\n", m.Name, m.Area)
	// Output:
	// Tricube 1.1571
}
