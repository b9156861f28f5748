package batch

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

// PrintStats writes a summary of the run to w. size is the number of bytes of the written
// report, or zero when the report went to stdout.
func PrintStats(w io.Writer, stats Stats, size int64) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Files:           %s\n", humanize.Comma(int64(stats.Files)))
	fmt.Fprintf(w, "  Requests:        %s\n", humanize.Comma(int64(stats.Requests)))
	fmt.Fprintf(w, "  Encoded:         %s\n", humanize.Comma(int64(stats.Encoded)))
	fmt.Fprintf(w, "  Trusted:         %s\n", humanize.Comma(int64(stats.Trusted)))
	fmt.Fprintf(w, "  Untrusted:       %s\n", humanize.Comma(int64(stats.Untrusted)))
	fmt.Fprintf(w, "  Invalid keyword: %s\n", humanize.Comma(int64(stats.InvalidKeyword)))
	fmt.Fprintf(w, "  Malformed:       %s\n", humanize.Comma(int64(stats.Malformed)))

	if size > 0 {
		fmt.Fprintf(w, "  Report size:     %s\n", humanize.IBytes(uint64(size)))
	}

	fmt.Fprintf(w, "  Duration:        %s\n", stats.Duration.Round(time.Millisecond))
}
