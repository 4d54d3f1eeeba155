package readability_test

import (
	"context"
	"fmt"

	readability "github.com/BumpyClock/readability-go"
)

func Example() {
	source := `<html><head><title>Tiny Site: A Worked Example</title></head><body>
		<div id="main">
			<p>This paragraph carries the article body, sentence after sentence,
			clause after clause, until the scorer has something to work with and
			the page has a clear readable core to return to the caller.</p>
			<p>A second paragraph keeps it company, with more prose, more commas,
			and a closing thought that rounds the article out nicely.</p>
		</div>
		<div id="sidebar"><p>Follow us on twitter</p></div>
	</body></html>`

	client := readability.New()
	result, err := client.Extract(context.Background(), source)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.OK)
	fmt.Println(result.Title)
	// Output:
	// true
	// Tiny Site: A Worked Example
}
