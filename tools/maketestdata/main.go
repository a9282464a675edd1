/*
Copyright 2023 The HexaDB Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// maketestdata regenerates the golden weight-string fixtures under
// testdata/ by asking a live MySQL server for the authoritative
// WEIGHT_STRING of every sample text, for every collation this
// package implements natively. Sample texts are UTF-8 files named
// <lang>.txt in the samples directory.
package main

import (
	"database/sql"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/pflag"

	"github.com/hexadb/collations"
)

var DSN = pflag.String("dsn", "root@tcp(127.0.0.1:3306)/", "MySQL connection string")
var Samples = pflag.String("samples", "tools/maketestdata/samples", "directory with <lang>.txt sample texts")
var Output = pflag.String("out", "testdata/wiki_strings.gob.gz", "")

func main() {
	pflag.Parse()

	conn, err := sql.Open("mysql", *DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	files, err := filepath.Glob(path.Join(*Samples, "*.txt"))
	if err != nil {
		log.Fatal(err)
	}
	if len(files) == 0 {
		log.Fatalf("no sample texts under %q", *Samples)
	}

	tdata := &collations.GoldenTest{Name: path.Base(*Output)}

	for _, file := range files {
		text, err := os.ReadFile(file)
		if err != nil {
			log.Fatal(err)
		}
		lang := strings.TrimSuffix(path.Base(file), ".txt")

		gcase := collations.GoldenCase{
			Lang:    lang,
			Text:    text,
			Weights: make(map[string][]byte),
		}

		for _, local := range collations.All() {
			if _, ok := local.(*collations.Collation_binary); ok {
				continue
			}

			start := time.Now()
			remote := collations.RemoteByName(conn, local.Name())
			weights := remote.WeightString(nil, text, 0)
			if err := remote.LastError(); err != nil {
				log.Printf("[%s] skip collation %s: %v", lang, local.Name(), err)
				continue
			}
			log.Printf("[%s] %s %v", lang, local.Name(), time.Since(start))
			gcase.Weights[local.Name()] = weights
		}

		tdata.Cases = append(tdata.Cases, gcase)
	}

	if err := tdata.EncodeToFile(*Output); err != nil {
		log.Fatal(err)
	}
}
