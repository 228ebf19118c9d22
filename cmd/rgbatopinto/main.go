package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/GeekHorse/Pinto"
	"github.com/GeekHorse/Pinto/rgba"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(
			os.Stderr,
			"Encode raw RGBA pixels from stdin as Pinto text on stdout.\n"+
				"Usage: %s WIDTH HEIGHT\n"+
				"Example: convert in.png rgba:- | %s 32 32 > out.pinto\n",
			os.Args[0],
			os.Args[0])
		os.Exit(1)
	}

	width, errWidth := strconv.Atoi(os.Args[1])
	height, errHeight := strconv.Atoi(os.Args[2])
	if errWidth != nil || errHeight != nil {
		fmt.Fprintf(os.Stderr, "ERROR: bad size `%sx%s`\n", os.Args[1], os.Args[2])
		os.Exit(1)
	}

	img, err := rgba.Read(bufio.NewReader(os.Stdin), width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: reading pixels failed! (%s)\n", err)
		os.Exit(2)
	}

	encoded, err := pinto.Encode(img)
	if err != nil {
		fmt.Fprintf(
			os.Stderr,
			"ERROR: pinto encode failed! (%s)\n",
			pinto.StrError(pinto.CodeOf(err)))
		os.Exit(2)
	}

	fmt.Println(encoded)
}
