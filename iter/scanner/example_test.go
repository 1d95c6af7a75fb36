package scanner_test

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/jake-scott/go-progress/iter/scanner"
)

func ExampleIterator() {
	input := `the first line
the second line
the third line`

	s := bufio.NewScanner(strings.NewReader(input))
	ctx := context.Background()
	iter := scanner.New(s)

	for iter.Next(ctx) {
		fmt.Printf("Line: <%s>\n", iter.Get())
	}

	if err := iter.Error(); err != nil {
		panic(err)
	}

	// output:
	// Line: <the first line>
	// Line: <the second line>
	// Line: <the third line>
}
