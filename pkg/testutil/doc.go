// Package testutil holds helpers shared by keyremap's tests: fixture files on
// disk or in memory and assertions on coded errors.
package testutil
