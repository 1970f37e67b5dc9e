package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rawbytedev/strview"
	"github.com/rawbytedev/strview/pkg/scan"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	corpus := strview.New(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 1024))
	tbl := strview.MakeSkipTable("lazy dog")
	for i := 0; i < 10000; i++ {
		for _, line := range scan.Lines(corpus) {
			word := line.TrimSpace(true, true)
			_ = word.IndexTable(&tbl, "lazy dog", 0, -1)
			w, _ := word.SliceToEnd(4, 1)
			_ = corpus.Index(w, 0, -1)
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
