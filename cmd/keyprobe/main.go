// keyprobe opens a raw terminal session and reports every byte it reads,
// along with window size changes. Press q to quit. Ctrl-C arrives as byte
// 0x03 instead of killing the process.
package main

import (
	"fmt"
	"log"
	"os"
	"time"
	"unicode"

	"github.com/lixenwraith/rawterm"
)

func main() {
	log.SetFlags(0)

	sess, err := rawterm.Open()
	if err != nil {
		log.Fatalf("keyprobe: %v", err)
	}
	defer func() {
		if err := sess.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "keyprobe: %v\n", err)
			fmt.Fprintln(os.Stderr, "keyprobe: terminal may still be in raw mode, try `reset`")
			os.Exit(1)
		}
	}()

	rows, cols, err := sess.Size()
	if err != nil {
		log.Printf("keyprobe: size: %v", err)
	} else {
		fmt.Printf("terminal %dx%d (cols x rows), press q to quit\n", cols, rows)
	}

	resizes := sess.Resizes()
	for {
		select {
		case ev := <-resizes:
			fmt.Printf("resize: %dx%d\n", ev.Cols, ev.Rows)
		default:
		}

		b, ok, err := sess.TryReadByte()
		if err != nil {
			log.Printf("keyprobe: read: %v", err)
			return
		}
		if !ok {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		if unicode.IsPrint(rune(b)) {
			fmt.Printf("byte 0x%02X %q\n", b, b)
		} else {
			fmt.Printf("byte 0x%02X\n", b)
		}
		if b == 'q' {
			return
		}
	}
}
