// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package leveldb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hookgate/hookgate/database"
)

func TestInterface(t *testing.T) {
	for _, test := range database.Tests {
		db, err := New(t.TempDir())
		require.NoError(t, err)

		test(t, db)

		// The test may have already closed the database.
		_ = db.Close()
	}
}
