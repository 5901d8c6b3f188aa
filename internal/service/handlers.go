package service

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go-micro.dev/v4/logger"

	"github.com/megawave/megawave/internal/model"
	"github.com/megawave/megawave/internal/query"
	"github.com/megawave/megawave/internal/stream"
)

// artCacheControl keeps art responses cacheable for a year; entries are
// content-addressed, so they never change under an ID.
const artCacheControl = "max-age=31536000"

func (s *Service) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": "ok"})
}

func (s *Service) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.library.Status()})
}

func (s *Service) Art(c *gin.Context) {
	entry, err := s.art.Fetch(model.ID(c.Param("id")))
	if err != nil {
		notFound(c)
		return
	}

	c.Header("Cache-Control", artCacheControl)
	c.Data(http.StatusOK, entry.Mime, entry.Bytes)
}

// Songs serves the filtered, sorted track list.
//
// /songs?sort=[-]field&filter=term&subkeyfilter=field-value
func (s *Service) Songs(c *gin.Context) {
	songs := query.Apply(s.library.Serialize(s.art.Link), query.Params{
		Filter:       c.Query("filter"),
		SubkeyFilter: c.Query("subkeyfilter"),
		Sort:         c.Query("sort"),
	})
	if songs == nil {
		songs = []model.SerializedTrack{}
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"songs": songs}})
}

// Song streams one byte window of a track per the Range request header.
// A request without a Range header is treated the same as an unknown ID.
func (s *Service) Song(c *gin.Context) {
	track, err := s.library.Get(model.ID(c.Param("id")))
	if err != nil {
		notFound(c)
		return
	}

	rangeHeader := c.GetHeader("Range")
	if rangeHeader == "" {
		notFound(c)
		return
	}

	st, err := stream.Resolve(track.AbsolutePath, rangeHeader)
	if err != nil {
		if errors.Is(err, stream.ErrMalformedRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
			return
		}
		logger.Errorf("Open stream for %q failed: %s", track.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "could not open file"}})
		return
	}
	defer st.Close()

	c.DataFromReader(http.StatusPartialContent, st.Window.Length(), track.FileType.MediaType(), st,
		map[string]string{
			"Accept-Ranges": "bytes",
			"Content-Range": st.Window.ContentRange(),
		})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "not found"}})
}
