/*
   Copyright 2026 The Serum Authors

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

// Package codeset provides set algebra over serum error codes.
//
// A Set is an unordered collection of distinct code strings, used to express
// "the set of codes an operation may produce" or "the set of codes a caller
// handles". The algebra supports exhaustiveness reasoning: a caller's
// handled set should be a superset of a callee's declared produced set, and
// every element of Difference(produced, handled) is an unhandled code worth
// surfacing as a review finding. Policy enforcement belongs to consuming
// tools; this package only supplies the algebra.
//
// Sets operate purely on the code field. Two errors with the same code but
// different messages or details are the same error kind here.
//
// All operations treat their operands as immutable and return fresh sets.
package codeset
