package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"crosswarped.com/sevenseg"
)

func main() {
	input := flag.String("input", "", "The puzzle input file to read")
	part := flag.Int("part", 0, "Which part to solve: 1, 2, or 0 for both")

	flag.Parse()

	if *input == "" {
		fmt.Println("Missing -input file")
		os.Exit(1)
	}
	if *part < 0 || *part > 2 {
		fmt.Println("Part must be 1, 2, or 0 for both")
		os.Exit(1)
	}

	if *part == 0 || *part == 1 {
		count, err := solve(*input, sevenseg.CountUniqueOutputs)
		if err != nil {
			fmt.Println("Error counting unique outputs:", err)
			os.Exit(1)
		}
		fmt.Println("part1:", count)
	}

	if *part == 0 || *part == 2 {
		sum, err := solve(*input, sevenseg.SumOutputs)
		if err != nil {
			fmt.Println("Error summing outputs:", err)
			os.Exit(1)
		}
		fmt.Println("part2:", sum)
	}
}

func solve(path string, aggregate func(r io.Reader) (int, error)) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return aggregate(f)
}
