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

/*Package atomphys is the main package of the atomphys library. It models the energy
levels of an atom or ion and the electric-dipole transitions between them, and computes
from them the quantities needed to plan an atomic physics experiment.


	**atomphys Capabilities**


    Builds atoms from spectroscopic data fetched from the NIST Atomic Spectra Database
	(see the nist subpackage), or from states and transitions given by the user.

    Reads term symbols in LS, jj and pair coupling (see the term subpackage).

    Transition wavelengths, frequencies, natural linewidths, saturation intensities,
	resonant cross sections and branching ratios. Lifetimes of states.

    The reduced dipole matrix element of a transition and its decay rate are kept
	consistent: setting either one updates the other.

    Scalar, vector and tensor dynamic polarizabilities, and the total polarizability
	of a Zeeman sublevel for any light polarization (see the polarizability and wigner
	subpackages). AC Stark shifts, photon scattering rates and magic wavelengths.

    Laser fields: wavelength, frequency, intensity, electric field and Rabi frequency.

    Every quantity carries its physical dimension (see the units subpackage), either
	in SI or in atomic units. Quantities from different unit systems cannot be mixed.

    Atoms can be saved to, and loaded from, JSON documents, optionally zstd or gzip compressed.


The Atom type owns its states and transitions. The transitions going up or down
from a state are not stored in the state, they are looked up in the atom every
time they are needed, so they are never out of date.*/
package atomphys
