package model

import "sort"

// Project is the aggregate root: it owns Zones, and references
// Constructions, VentilationUnits and Systems by stable ID through arenas,
// never by pointer, so the whole tree can be passed by value into the
// engine without aliasing concerns.
type Project struct {
	ID              ID
	Name            string
	AutomationClass AutomationClass

	Zones []Zone

	Surfaces         map[ID]Surface
	Constructions    map[ID]Construction
	VentilationUnits map[ID]VentilationUnit
	Systems          map[ID]System
}

// SurfacesOf returns the surfaces belonging to a zone, in the zone's
// declared SurfaceIDs order.
func (p Project) SurfacesOf(z Zone) []Surface {
	out := make([]Surface, 0, len(z.SurfaceIDs))
	for _, id := range z.SurfaceIDs {
		if s, ok := p.Surfaces[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

// ConstructionOf looks up a surface's construction.
func (p Project) ConstructionOf(s Surface) (Construction, bool) {
	c, ok := p.Constructions[s.ConstructionID]
	return c, ok
}

// VentilationUnitsOf returns the mechanical units linked to a zone.
func (p Project) VentilationUnitsOf(z Zone) []VentilationUnit {
	out := make([]VentilationUnit, 0, len(z.Ventilation.MechanicalUnitIDs))
	for _, id := range z.Ventilation.MechanicalUnitIDs {
		if u, ok := p.VentilationUnits[id]; ok {
			out = append(out, u)
		}
	}
	return out
}

// SystemsFor returns every system of the given end-use that lists zoneID
// among its served zones, ordered by system ID.
func (p Project) SystemsFor(zoneID ID, endUse EndUse) []System {
	var out []System
	for _, sys := range p.Systems {
		if sys.EndUse != endUse {
			continue
		}
		for _, zid := range sys.Zones.Zones() {
			if zid == zoneID {
				out = append(out, sys)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
