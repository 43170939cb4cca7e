/*
   Copyright 2026 The DIRPX Authors.

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

package apis

// Tracker keeps the set of identifiers currently inside a factory
// invocation, plus an exclusion set of identifiers that opted out of
// creation checking (constructs with their own reentrancy protocol).
//
// An identifier already tracked cannot re-enter unless excluded; that is a
// circular-creation error. Exiting an identifier that was never entered
// signals a bookkeeping bug in a collaborator, not a user error.
type Tracker interface {
	// Enter marks id as in-creation. Fails when id is already tracked
	// and not excluded.
	Enter(id string) error
	// Exit clears the in-creation mark. Fails when id was not tracked
	// and not excluded.
	Exit(id string) error
	// SetExcluded toggles whether id bypasses tracking entirely.
	SetExcluded(id string, excluded bool)
	// InCreation reports whether id is tracked and not excluded.
	InCreation(id string) bool
}
