//go:build integration

// Package testdb provides helpers for tests that need a live PostgreSQL
// database.
//
// Tests skip themselves when no database URL is configured. Each test body
// runs inside WithTx, whose transaction is always rolled back, so tests can
// run in parallel against the same database without cleanup.
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        // ...
//	    })
//	}
//
// The database URL is read from DATABASE_URL, then MEDIAN_TEST_DATABASE_URL.
package testdb
