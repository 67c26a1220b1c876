// SPDX-License-Identifier: MIT

package dataset

import "github.com/katalvlaran/roadnet/core"

// Municipality ids of the Casanare sample.
const (
	Yopal core.NodeID = iota
	Aguazul
	Tauramena
	Mani
	Orocue
	Villanueva
	Monterrey
	PazDeAriporo
	Trinidad
	HatoCorozal
)

// DemoRoutes are the origin/destination pairs the demo report compares.
var DemoRoutes = [][2]core.NodeID{
	{Yopal, Monterrey},
	{Yopal, Orocue},
	{HatoCorozal, Villanueva},
}

// CasanareSpec returns the sample network as a Spec.
func CasanareSpec() Spec {
	return Spec{
		Nodes: []NodeSpec{
			{0, "Yopal"},
			{1, "Aguazul"},
			{2, "Tauramena"},
			{3, "Mani"},
			{4, "Orocue"},
			{5, "Villanueva"},
			{6, "Monterrey"},
			{7, "Paz de Ariporo"},
			{8, "Trinidad"},
			{9, "Hato Corozal"},
		},
		Roads: []RoadSpec{
			{0, 1, 28, "Good"},
			{0, 7, 92, "Fair"},
			{0, 3, 65, "Good"},
			{1, 2, 35, "Good"},
			{1, 3, 42, "Fair"},
			{2, 5, 48, "Good"},
			{2, 6, 55, "Poor"},
			{3, 4, 78, "Fair"},
			{5, 6, 22, "Good"},
			{7, 8, 45, "Fair"},
			{7, 9, 38, "Good"},
			{8, 4, 95, "Poor"},
			{9, 8, 52, "Fair"},
		},
	}
}

// Casanare builds the sample network.
func Casanare(opts ...core.GraphOption) (*core.Graph, error) {
	return Build(CasanareSpec(), opts...)
}
