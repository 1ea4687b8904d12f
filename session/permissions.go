package session

// User is the account the session is logged in as.
type User struct {
	ID    string
	Login string
	Name  string
}

// Permission grants Key either globally or in the listed projects.
type Permission struct {
	Key        string
	Global     bool
	ProjectIDs []string
}

// Permission keys checked by the issue screens.
const (
	ReadIssue     = "READ_ISSUE"
	UpdateIssue   = "UPDATE_ISSUE"
	CreateComment = "CREATE_COMMENT"
	UpdateComment = "UPDATE_COMMENT"
	DeleteComment = "DELETE_COMMENT"
)

// IssuePermissions answers permission questions for the current user.
type IssuePermissions struct {
	user   User
	grants map[string]grant
}

type grant struct {
	global   bool
	projects map[string]struct{}
}

// NewIssuePermissions indexes perms for user.
func NewIssuePermissions(perms []Permission, user User) *IssuePermissions {
	p := &IssuePermissions{user: user, grants: make(map[string]grant, len(perms))}
	for _, perm := range perms {
		g := p.grants[perm.Key]
		if perm.Global {
			g.global = true
		}
		for _, id := range perm.ProjectIDs {
			if g.projects == nil {
				g.projects = make(map[string]struct{})
			}
			g.projects[id] = struct{}{}
		}
		p.grants[perm.Key] = g
	}
	return p
}

// CurrentUser returns the user the permissions belong to.
func (p *IssuePermissions) CurrentUser() User {
	return p.user
}

// Has reports whether key is granted globally or in projectID.
func (p *IssuePermissions) Has(key, projectID string) bool {
	if p == nil {
		return false
	}
	g, ok := p.grants[key]
	if !ok {
		return false
	}
	if g.global {
		return true
	}
	_, ok = g.projects[projectID]
	return ok
}

// CanUpdateComment reports whether the current user may edit a comment by
// authorLogin in projectID. Authors may edit their own comments.
func (p *IssuePermissions) CanUpdateComment(projectID, authorLogin string) bool {
	if p == nil {
		return false
	}
	if authorLogin != "" && authorLogin == p.user.Login {
		return p.Has(CreateComment, projectID) || p.Has(UpdateComment, projectID)
	}
	return p.Has(UpdateComment, projectID)
}

// CanDeleteComment reports whether the current user may delete a comment by
// authorLogin in projectID.
func (p *IssuePermissions) CanDeleteComment(projectID, authorLogin string) bool {
	if p == nil {
		return false
	}
	if authorLogin != "" && authorLogin == p.user.Login && p.Has(CreateComment, projectID) {
		return true
	}
	return p.Has(DeleteComment, projectID)
}
