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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGoldenWeights replays weight strings captured from a live MySQL
// server with tools/maketestdata. The fixtures are large and not
// checked in; the test skips when they are missing.
func TestGoldenWeights(t *testing.T) {
	goldenPaths, err := filepath.Glob("testdata/wiki_*.gob.gz")
	require.NoError(t, err)
	if len(goldenPaths) == 0 {
		t.Skipf("no golden fixtures in testdata/ (generate them with tools/maketestdata)")
	}

	for _, goldenPath := range goldenPaths {
		golden := &GoldenTest{}
		require.NoError(t, golden.DecodeFromFile(goldenPath))

		for _, goldenCase := range golden.Cases {
			t.Run(fmt.Sprintf("%s (%s)", golden.Name, goldenCase.Lang), func(t *testing.T) {
				for collName, expected := range goldenCase.Weights {
					coll := LookupByName(collName)
					require.NotNil(t, coll, "unknown collation %q in %s", collName, goldenPath)

					result := coll.WeightString(nil, goldenCase.Text, 0)
					assert.Equal(t, expected, result, "mismatch for %q", collName)
				}
			})
		}
	}
}
