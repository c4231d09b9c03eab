/*
 * doc.go, part of atomphys.
 *
 *
 * Copyright 2024 The atomphys authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

/*Package nist retrieves energy levels and spectral lines from the NIST Atomic Spectra
Database (ASD), and converts them into records that can be used to build atoms.

Replies are cached, keyed by the query, either in zstd-compressed files (FileCache),
in a SQLite database (SQLiteCache), or in memory (MemoryCache). Fetches take a context,
and are retried with exponential backoff on network errors and server errors.

A query for which the ASD has no data gives an empty result, not an error.*/
package nist
