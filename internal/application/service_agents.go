package application

// defaultAgents is the fixed sales roster offered by assignment pickers.
var defaultAgents = []AgentItem{
	{ID: "1", Name: "Sarah Miller", Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=64&h=64&q=80"},
	{ID: "2", Name: "Mike Ross", Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=64&h=64&q=80"},
	{ID: "3", Name: "Jessica Pearson", Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&w=64&h=64&q=80"},
	{ID: "4", Name: "Harvey Specter", Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&w=64&h=64&q=80"},
}

// Agents returns the roster. The slice is copied so callers cannot mutate
// the shared table.
func (s *Service) Agents() []AgentItem {
	agents := make([]AgentItem, len(defaultAgents))
	copy(agents, defaultAgents)
	return agents
}
