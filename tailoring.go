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

package collations

import (
	"fmt"

	"github.com/hexadb/collations/internal/uca"
)

// Register compiles a tailoring in the ICU rule syntax against the
// named base collation and registers the result under the given name
// and identifier. The base must be a registered UCA 0900 collation;
// the new collation inherits its comparison levels. A tailoring that
// fails to parse or compile is rejected as a whole and nothing is
// registered.
func Register(name string, id ID, baseName string, rules string) (Collation, error) {
	if old := collationsByName[name]; old != nil {
		return nil, fmt.Errorf("collation %q is already registered (id %d)", name, old.Id())
	}
	if old := collationsById[id]; old != nil {
		return nil, fmt.Errorf("collation id %d is already registered (%s)", id, old.Name())
	}
	base, ok := collationsByName[baseName].(*Collation_utf8mb4_uca_0900)
	if !ok {
		return nil, fmt.Errorf("unknown base collation %q for tailoring %q", baseName, name)
	}

	rs, err := uca.ParseTailoring(name, rules)
	if err != nil {
		return nil, err
	}
	table, err := rs.Compile(base.table)
	if err != nil {
		return nil, err
	}

	coll := &Collation_utf8mb4_uca_0900{
		id:        id,
		name:      name,
		levels:    base.levels,
		table:     base.table,
		tailoring: table,
		tailored:  true,
	}
	coll.init()
	register(coll)
	return coll, nil
}

// mustRegister is Register for the built-in tailorings, which must
// never fail to compile.
func mustRegister(name string, id ID, baseName string, rules string) {
	if _, err := Register(name, id, baseName, rules); err != nil {
		panic(fmt.Sprintf("failed to register built-in collation %s: %v", name, err))
	}
}

// registerBuiltinTailorings runs from this package's init once the
// base 0900 collations are registered.
func registerBuiltinTailorings() {
	mustRegister("utf8mb4_es_trad_0900_ai_ci", 270, "utf8mb4_0900_ai_ci",
		"&n < ñ <<< Ñ"+
			" &c < ch <<< Ch <<< CH"+
			" &l < ll <<< Ll <<< LL")

	mustRegister("utf8mb4_cs_0900_ai_ci", 266, "utf8mb4_0900_ai_ci",
		"&c < č <<< Č"+
			" &h < ch <<< cH <<< Ch <<< CH"+
			" &r < ř <<< Ř"+
			" &s < š <<< Š"+
			" &z < ž <<< Ž")

	mustRegister("utf8mb4_de_pb_0900_ai_ci", 256, "utf8mb4_0900_ai_ci",
		"&ae << ä <<< Ä"+
			" &oe << ö <<< Ö"+
			" &ue << ü <<< Ü")

	mustRegister("utf8mb4_da_0900_ai_ci", 267, "utf8mb4_0900_ai_ci",
		"&d <<< đ/h <<< Đ/H"+
			" &th <<< þ"+
			" &TH <<< Þ"+
			" &[before 1]ǀ < æ <<< Æ << ä <<< Ä"+
			" < ø <<< Ø << ö <<< Ö"+
			" < å <<< Å <<< aa <<< Aa <<< AA")

	mustRegister("utf8mb4_da_0900_as_cs", 290, "utf8mb4_0900_as_cs",
		"[caseFirst upper]"+
			" &[before 1]ǀ < æ <<< Æ << ä <<< Ä"+
			" < ø <<< Ø << ö <<< Ö"+
			" < å <<< Å <<< aa <<< Aa <<< AA")

	mustRegister("utf8mb4_ru_0900_ai_ci", 306, "utf8mb4_0900_ai_ci",
		"[reorder Cyrl]")
}
