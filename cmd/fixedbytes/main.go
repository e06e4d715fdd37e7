// fixedbytes converts integers and blobs from and to their fixed-size little endian wire units.
//
//	fixedbytes encode --type u32 1234         # d2040000
//	fixedbytes decode --type u32 d2040000     # 1234
//	fixedbytes id hello                       # blake2b identifier, base58 and xxh3 checksum
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
