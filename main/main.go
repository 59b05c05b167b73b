package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/fixedstr"
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
	labels := []string{"edge-a", "edge-b", "inventory-shard-07", "eu-west-1c"}
	var tag fixedstr.String[[32]byte]
	for i := 0; i < 10000; i++ {
		for _, l := range labels {
			if err := tag.Assign(l); err != nil {
				log.Fatal(err)
			}
			if !tag.EqualString(l) {
				log.Fatal("content mismatch")
			}
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
