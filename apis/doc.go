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

// Package apis defines the small, stable interfaces through which external
// collaborators consume the serum core: capability interfaces for
// code-carrying errors, the transport status Mapper, and the descriptor
// shape used for structured logging.
//
// The capability interfaces are the mechanism by which any native error
// representation is adapted to the serum model — by attaching a code
// accessor, never by mapping codes onto an inheritance tree. Adapters
// (HTTP, gRPC, logging) depend on these interfaces rather than on the
// concrete serum.Error type.
package apis
