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

// makeucadata regenerates internal/uca/ucadata.go from a JSON weight
// dump. The dump maps codepoints to their flattened 3-level collation
// elements; the tool lays the weights out in the columnar 0900 page
// format, derives the single-level legacy table from the primaries,
// and emits the reorderable script ranges.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/hexadb/collations/internal/uca"
)

var Input = pflag.String("in", "tools/makeucadata/testdata/ucadump.json", "")
var Output = pflag.String("out", "internal/uca/ucadata.go", "")

type weightDump struct {
	Name       string
	Weights900 map[string][]uint16
	Scripts    []struct {
		Name  string
		First uint16
		Last  uint16
	}
}

type page struct {
	number  int
	weights [uca.CodepointsPerPage][]uint16
}

func (p *page) maxCollationElements() int {
	max := 0
	for _, w := range p.weights {
		if ce := len(w) / uca.MaxLevels; ce > max {
			max = ce
		}
	}
	return max
}

func loadPages(dump *weightDump) []*page {
	byNumber := make(map[int]*page)
	for key, weights := range dump.Weights900 {
		cp, err := strconv.ParseInt(key[2:], 16, 32)
		if err != nil {
			log.Fatalf("malformed codepoint key %q: %v", key, err)
		}
		if len(weights)%uca.MaxLevels != 0 {
			log.Fatalf("weights for %s are not %d-level elements", key, uca.MaxLevels)
		}

		pn, offset := uca.PageOffset(rune(cp))
		pg := byNumber[pn]
		if pg == nil {
			pg = &page{number: pn}
			byNumber[pn] = pg
		}
		pg.weights[offset] = weights
	}

	var pages []*page
	for _, pg := range byNumber {
		pages = append(pages, pg)
	}
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].number < pages[j].number
	})
	return pages
}

func writeSlice(out *bytes.Buffer, name string, arr []uint16) {
	fmt.Fprintf(out, "var %s = []uint16{", name)
	for i, w := range arr {
		if i%12 == 0 {
			out.WriteString("\n\t")
		}
		fmt.Fprintf(out, "0x%04X, ", w)
	}
	out.WriteString("\n}\n\n")
}

func write900Page(out *bytes.Buffer, pg *page) {
	maxce := pg.maxCollationElements()
	arr := make([]uint16, uca.CodepointsPerPage*(1+maxce*uca.MaxLevels))
	for offset, weights := range pg.weights {
		arr[offset] = uint16(len(weights) / uca.MaxLevels)
		for i, w := range weights {
			n, l := i/uca.MaxLevels, i%uca.MaxLevels
			arr[uca.CodepointsPerPage+(n*uca.MaxLevels+l)*uca.CodepointsPerPage+offset] = w
		}
	}
	writeSlice(out, fmt.Sprintf("weightTable_uca900_page%03X", pg.number), arr)
}

func writeLegacyPage(out *bytes.Buffer, pg *page) {
	stride := 1
	primaries := make([][]uint16, uca.CodepointsPerPage)
	for offset, weights := range pg.weights {
		for i := 0; i < len(weights); i += uca.MaxLevels {
			if weights[i] != 0 {
				primaries[offset] = append(primaries[offset], weights[i])
			}
		}
		if len(primaries[offset]) > stride {
			stride = len(primaries[offset])
		}
	}

	arr := make([]uint16, 1+uca.CodepointsPerPage*stride)
	arr[0] = uint16(stride)
	for offset, prim := range primaries {
		copy(arr[1+stride*offset:], prim)
	}
	writeSlice(out, fmt.Sprintf("weightTable_uca520_page%03X", pg.number), arr)
}

func writeTable(out *bytes.Buffer, name, pagePrefix string, pages []*page) {
	fmt.Fprintf(out, "var %s = Weights{\n", name)
	for _, pg := range pages {
		fmt.Fprintf(out, "\t0x%03X: &%s_page%03X,\n", pg.number, pagePrefix, pg.number)
	}
	fmt.Fprintf(out, "\t0x%03X: nil,\n}\n\n", uca.MaxCodepoint/uca.CodepointsPerPage-1)
}

func main() {
	pflag.Parse()

	rf, err := os.Open(*Input)
	if err != nil {
		log.Fatal(err)
	}
	var dump weightDump
	if err := json.NewDecoder(rf).Decode(&dump); err != nil {
		log.Fatal(err)
	}
	_ = rf.Close()

	pages := loadPages(&dump)

	var out bytes.Buffer
	out.WriteString(licenseFileHeader)
	out.WriteString("// Code generated by makeucadata. DO NOT EDIT.\n\npackage uca\n\n")

	for _, pg := range pages {
		write900Page(&out, pg)
	}
	for _, pg := range pages {
		writeLegacyPage(&out, pg)
	}

	out.WriteString("// WeightTable_uca900 is the default 3-level weight table.\n")
	writeTable(&out, "WeightTable_uca900", "weightTable_uca900", pages)
	out.WriteString("// WeightTable_uca520 is the default legacy single-level weight table.\n")
	writeTable(&out, "WeightTable_uca520", "weightTable_uca520", pages)

	out.WriteString("// reorderScripts are the primary weight ranges of the reorderable\n")
	out.WriteString("// character groups in the default tables.\n")
	out.WriteString("var reorderScripts = []scriptRange{\n")
	for _, sc := range dump.Scripts {
		fmt.Fprintf(&out, "\t{%q, 0x%04X, 0x%04X},\n", sc.Name, sc.First, sc.Last)
	}
	out.WriteString("}\n")

	formatted, err := format.Source(out.Bytes())
	if err != nil {
		log.Fatalf("generated code does not parse: %v", err)
	}
	if err := os.WriteFile(*Output, formatted, 0644); err != nil {
		log.Fatal(err)
	}
}

const licenseFileHeader = `/*
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

`
