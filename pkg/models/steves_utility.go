// Package models provides built-in socio-technical network models.
//
// Steve's Utility demonstrates the "invisible node" problem in critical
// infrastructure security: one helpful senior OT technician accumulates
// cross-domain access and becomes a single point of failure that never
// appears on a network diagram.
package models

import (
	"github.com/dd0wney/sociograph/pkg/graph"
)

// StevesUtilityNodes defines all 33 nodes for Steve's Utility.
var StevesUtilityNodes = []graph.Node{
	// Technical (22)
	// Level 0: Process
	{ID: "PLC_Turbine1", Category: graph.CategoryTechnical},
	{ID: "PLC_Turbine2", Category: graph.CategoryTechnical},
	{ID: "PLC_Substation", Category: graph.CategoryTechnical},
	{ID: "RTU_Remote1", Category: graph.CategoryTechnical},
	{ID: "RTU_Remote2", Category: graph.CategoryTechnical},
	// Level 1: Control
	{ID: "HMI_Control1", Category: graph.CategoryTechnical},
	{ID: "HMI_Control2", Category: graph.CategoryTechnical},
	{ID: "Safety_PLC", Category: graph.CategoryTechnical},
	// Level 2: Supervisory
	{ID: "SCADA_Server", Category: graph.CategoryTechnical},
	{ID: "Historian_OT", Category: graph.CategoryTechnical},
	{ID: "Eng_Workstation", Category: graph.CategoryTechnical},
	// Level 3: Site Operations
	{ID: "OT_Switch_Core", Category: graph.CategoryTechnical},
	{ID: "Patch_Server", Category: graph.CategoryTechnical},
	{ID: "AD_Server_OT", Category: graph.CategoryTechnical},
	// Level 3.5: DMZ
	{ID: "Firewall_ITOT", Category: graph.CategoryTechnical},
	{ID: "Jump_Server", Category: graph.CategoryTechnical},
	{ID: "Data_Diode", Category: graph.CategoryTechnical},
	// Level 4: IT
	{ID: "IT_Switch_Core", Category: graph.CategoryTechnical},
	{ID: "Email_Server", Category: graph.CategoryTechnical},
	{ID: "ERP_System", Category: graph.CategoryTechnical},
	{ID: "AD_Server_IT", Category: graph.CategoryTechnical},
	{ID: "VPN_Gateway", Category: graph.CategoryTechnical},

	// Human (7)
	{ID: "Steve", Category: graph.CategoryHuman},
	{ID: "OT_Manager", Category: graph.CategoryHuman},
	{ID: "IT_Admin", Category: graph.CategoryHuman},
	{ID: "Control_Op1", Category: graph.CategoryHuman},
	{ID: "Control_Op2", Category: graph.CategoryHuman},
	{ID: "Plant_Manager", Category: graph.CategoryHuman},
	{ID: "Vendor_Rep", Category: graph.CategoryHuman},

	// Process (4)
	{ID: "Change_Mgmt_Process", Category: graph.CategoryProcess},
	{ID: "Incident_Response", Category: graph.CategoryProcess},
	{ID: "Vendor_Access_Process", Category: graph.CategoryProcess},
	{ID: "Patch_Approval", Category: graph.CategoryProcess},
}

// StevesUtilityEdges defines all 70 undirected edges.
var StevesUtilityEdges = []graph.Edge{
	// Technical data plane (26)
	{A: "PLC_Turbine1", B: "HMI_Control1"},
	{A: "PLC_Turbine2", B: "HMI_Control2"},
	{A: "PLC_Substation", B: "HMI_Control1"},
	{A: "RTU_Remote1", B: "SCADA_Server"},
	{A: "RTU_Remote2", B: "SCADA_Server"},
	{A: "Safety_PLC", B: "HMI_Control1"},
	{A: "Safety_PLC", B: "HMI_Control2"},
	{A: "HMI_Control1", B: "SCADA_Server"},
	{A: "HMI_Control2", B: "SCADA_Server"},
	{A: "SCADA_Server", B: "Historian_OT"},
	{A: "SCADA_Server", B: "Eng_Workstation"},
	{A: "SCADA_Server", B: "OT_Switch_Core"},
	{A: "Historian_OT", B: "OT_Switch_Core"},
	{A: "Eng_Workstation", B: "OT_Switch_Core"},
	{A: "OT_Switch_Core", B: "Patch_Server"},
	{A: "OT_Switch_Core", B: "AD_Server_OT"},
	{A: "OT_Switch_Core", B: "Firewall_ITOT"},
	{A: "Firewall_ITOT", B: "Jump_Server"},
	{A: "Firewall_ITOT", B: "Data_Diode"},
	{A: "Data_Diode", B: "Historian_OT"},
	{A: "Firewall_ITOT", B: "IT_Switch_Core"},
	{A: "Jump_Server", B: "IT_Switch_Core"},
	{A: "IT_Switch_Core", B: "Email_Server"},
	{A: "IT_Switch_Core", B: "ERP_System"},
	{A: "IT_Switch_Core", B: "AD_Server_IT"},
	{A: "IT_Switch_Core", B: "VPN_Gateway"},

	// Steve's cross-domain access (23)
	{A: "Steve", B: "PLC_Turbine1"},
	{A: "Steve", B: "PLC_Turbine2"},
	{A: "Steve", B: "PLC_Substation"},
	{A: "Steve", B: "HMI_Control1"},
	{A: "Steve", B: "HMI_Control2"},
	{A: "Steve", B: "SCADA_Server"},
	{A: "Steve", B: "Eng_Workstation"},
	{A: "Steve", B: "Historian_OT"},
	{A: "Steve", B: "OT_Switch_Core"},
	{A: "Steve", B: "Patch_Server"},
	{A: "Steve", B: "Jump_Server"},
	{A: "Steve", B: "Firewall_ITOT"},
	{A: "Steve", B: "VPN_Gateway"},
	{A: "Steve", B: "AD_Server_OT"},
	{A: "Steve", B: "Change_Mgmt_Process"},
	{A: "Steve", B: "Incident_Response"},
	{A: "Steve", B: "Vendor_Access_Process"},
	{A: "Steve", B: "Patch_Approval"},
	{A: "Steve", B: "Vendor_Rep"},
	{A: "Steve", B: "OT_Manager"},
	{A: "Steve", B: "Control_Op1"},
	{A: "Steve", B: "Control_Op2"},
	{A: "Steve", B: "IT_Admin"},

	// Other human and process edges (21)
	{A: "Control_Op1", B: "HMI_Control1"},
	{A: "Control_Op1", B: "HMI_Control2"},
	{A: "Control_Op1", B: "Incident_Response"},
	{A: "Control_Op2", B: "HMI_Control1"},
	{A: "Control_Op2", B: "HMI_Control2"},
	{A: "Control_Op2", B: "Incident_Response"},
	{A: "OT_Manager", B: "SCADA_Server"},
	{A: "OT_Manager", B: "Change_Mgmt_Process"},
	{A: "OT_Manager", B: "Patch_Approval"},
	{A: "OT_Manager", B: "Plant_Manager"},
	{A: "IT_Admin", B: "IT_Switch_Core"},
	{A: "IT_Admin", B: "Email_Server"},
	{A: "IT_Admin", B: "ERP_System"},
	{A: "IT_Admin", B: "AD_Server_IT"},
	{A: "IT_Admin", B: "VPN_Gateway"},
	{A: "IT_Admin", B: "Firewall_ITOT"},
	{A: "Plant_Manager", B: "ERP_System"},
	{A: "Plant_Manager", B: "Email_Server"},
	{A: "Vendor_Rep", B: "VPN_Gateway"},
	{A: "Vendor_Rep", B: "Jump_Server"},
	{A: "Vendor_Rep", B: "Vendor_Access_Process"},
}

// StevesUtility builds the full 33-node, 70-edge model.
func StevesUtility() (*graph.Graph, error) {
	return graph.BuildGraph(StevesUtilityNodes, StevesUtilityEdges)
}

// StevesUtilityWithoutSteve builds the model with Steve removed, for removal
// analysis: what happens when the invisible node leaves.
func StevesUtilityWithoutSteve() (*graph.Graph, error) {
	nodes := make([]graph.Node, 0, len(StevesUtilityNodes)-1)
	for _, n := range StevesUtilityNodes {
		if n.ID != "Steve" {
			nodes = append(nodes, n)
		}
	}

	edges := make([]graph.Edge, 0, len(StevesUtilityEdges))
	for _, e := range StevesUtilityEdges {
		if e.A != "Steve" && e.B != "Steve" {
			edges = append(edges, e)
		}
	}

	return graph.BuildGraph(nodes, edges)
}
