package application

import "github.com/bnema/voxel-schematics/internal/domain"

type ClipboardStatus struct {
	Size          domain.Vec3i
	Offset        domain.Vec3i
	Blocks        int
	SolidBlocks   int
	BlockEntities int
	Entities      int
}

// SessionStatus is a read-only view of one actor's session.
type SessionStatus struct {
	ActorID       string
	FirstCorner   *domain.Vec3i
	SecondCorner  *domain.Vec3i
	Selection     *domain.Box
	SelectionSize *domain.Vec3i
	Origin        *domain.Vec3i
	Clipboard     *ClipboardStatus
}

func statusFromSession(session *domain.ActorSession) SessionStatus {
	status := SessionStatus{ActorID: session.ID().String()}

	if p, ok := session.FirstCorner(); ok {
		status.FirstCorner = &p
	}
	if p, ok := session.SecondCorner(); ok {
		status.SecondCorner = &p
	}
	if box, err := session.Selection(); err == nil {
		size := box.Size()
		status.Selection = &box
		status.SelectionSize = &size
	}
	if origin, ok := session.Origin(); ok {
		status.Origin = &origin
	}
	if volume, ok := session.Clipboard(); ok {
		solid := 0
		for _, state := range volume.Blocks {
			if state != domain.BlockAir {
				solid++
			}
		}
		status.Clipboard = &ClipboardStatus{
			Size:          volume.Size,
			Offset:        volume.Offset,
			Blocks:        len(volume.Blocks),
			SolidBlocks:   solid,
			BlockEntities: len(volume.BlockEntities),
			Entities:      len(volume.Entities),
		}
	}

	return status
}
