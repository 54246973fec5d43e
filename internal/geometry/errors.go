/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "errors"

var (
	// ErrUnsupportedObject is returned when a dispatcher receives an object
	// outside the closed set of geometry variants it handles.
	ErrUnsupportedObject = errors.New("unsupported geometry object")
	// ErrSingular is returned when inverting a non-invertible transformation.
	ErrSingular = errors.New("transformation is not invertible")
)
