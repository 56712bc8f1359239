package format

import "fmt"

// AttributeType identifies one member of the closed set of shader-side attribute and
// varying declarations: scalar float, float vectors of 2-4, every 2-4 × 2-4 float
// matrix shape, and signed/unsigned integer scalars and vectors of 2-4. Matrix types
// are named columns × rows, matching the GLSL matCxR convention.
type AttributeType int

const (
	AttributeTypeFloat AttributeType = iota
	AttributeTypeFloatVector2
	AttributeTypeFloatVector3
	AttributeTypeFloatVector4
	AttributeTypeFloatMatrix2x2
	AttributeTypeFloatMatrix2x3
	AttributeTypeFloatMatrix2x4
	AttributeTypeFloatMatrix3x2
	AttributeTypeFloatMatrix3x3
	AttributeTypeFloatMatrix3x4
	AttributeTypeFloatMatrix4x2
	AttributeTypeFloatMatrix4x3
	AttributeTypeFloatMatrix4x4
	AttributeTypeInteger
	AttributeTypeIntegerVector2
	AttributeTypeIntegerVector3
	AttributeTypeIntegerVector4
	AttributeTypeUnsignedInteger
	AttributeTypeUnsignedIntegerVector2
	AttributeTypeUnsignedIntegerVector3
	AttributeTypeUnsignedIntegerVector4
)

// attributeTypeCount is the number of members in the closed AttributeType set.
const attributeTypeCount = 21

// GL type identifiers as reported by program introspection. These are the raw
// enumeration values a WebGL2-class reflection API returns for active attributes
// and transform-feedback varyings.
const (
	glFloat           = 0x1406
	glFloatVec2       = 0x8B50
	glFloatVec3       = 0x8B51
	glFloatVec4       = 0x8B52
	glFloatMat2       = 0x8B5A
	glFloatMat3       = 0x8B5B
	glFloatMat4       = 0x8B5C
	glFloatMat2x3     = 0x8B65
	glFloatMat2x4     = 0x8B66
	glFloatMat3x2     = 0x8B67
	glFloatMat3x4     = 0x8B68
	glFloatMat4x2     = 0x8B69
	glFloatMat4x3     = 0x8B6A
	glInt             = 0x1404
	glIntVec2         = 0x8B53
	glIntVec3         = 0x8B54
	glIntVec4         = 0x8B55
	glUnsignedInt     = 0x1405
	glUnsignedIntVec2 = 0x8DC6
	glUnsignedIntVec3 = 0x8DC7
	glUnsignedIntVec4 = 0x8DC8
)

var glTypeByAttributeType = [attributeTypeCount]uint32{
	AttributeTypeFloat:                  glFloat,
	AttributeTypeFloatVector2:           glFloatVec2,
	AttributeTypeFloatVector3:           glFloatVec3,
	AttributeTypeFloatVector4:           glFloatVec4,
	AttributeTypeFloatMatrix2x2:         glFloatMat2,
	AttributeTypeFloatMatrix2x3:         glFloatMat2x3,
	AttributeTypeFloatMatrix2x4:         glFloatMat2x4,
	AttributeTypeFloatMatrix3x2:         glFloatMat3x2,
	AttributeTypeFloatMatrix3x3:         glFloatMat3,
	AttributeTypeFloatMatrix3x4:         glFloatMat3x4,
	AttributeTypeFloatMatrix4x2:         glFloatMat4x2,
	AttributeTypeFloatMatrix4x3:         glFloatMat4x3,
	AttributeTypeFloatMatrix4x4:         glFloatMat4,
	AttributeTypeInteger:                glInt,
	AttributeTypeIntegerVector2:         glIntVec2,
	AttributeTypeIntegerVector3:         glIntVec3,
	AttributeTypeIntegerVector4:         glIntVec4,
	AttributeTypeUnsignedInteger:        glUnsignedInt,
	AttributeTypeUnsignedIntegerVector2: glUnsignedIntVec2,
	AttributeTypeUnsignedIntegerVector3: glUnsignedIntVec3,
	AttributeTypeUnsignedIntegerVector4: glUnsignedIntVec4,
}

var attributeTypeNames = [attributeTypeCount]string{
	AttributeTypeFloat:                  "Float",
	AttributeTypeFloatVector2:           "FloatVector2",
	AttributeTypeFloatVector3:           "FloatVector3",
	AttributeTypeFloatVector4:           "FloatVector4",
	AttributeTypeFloatMatrix2x2:         "FloatMatrix2x2",
	AttributeTypeFloatMatrix2x3:         "FloatMatrix2x3",
	AttributeTypeFloatMatrix2x4:         "FloatMatrix2x4",
	AttributeTypeFloatMatrix3x2:         "FloatMatrix3x2",
	AttributeTypeFloatMatrix3x3:         "FloatMatrix3x3",
	AttributeTypeFloatMatrix3x4:         "FloatMatrix3x4",
	AttributeTypeFloatMatrix4x2:         "FloatMatrix4x2",
	AttributeTypeFloatMatrix4x3:         "FloatMatrix4x3",
	AttributeTypeFloatMatrix4x4:         "FloatMatrix4x4",
	AttributeTypeInteger:                "Integer",
	AttributeTypeIntegerVector2:         "IntegerVector2",
	AttributeTypeIntegerVector3:         "IntegerVector3",
	AttributeTypeIntegerVector4:         "IntegerVector4",
	AttributeTypeUnsignedInteger:        "UnsignedInteger",
	AttributeTypeUnsignedIntegerVector2: "UnsignedIntegerVector2",
	AttributeTypeUnsignedIntegerVector3: "UnsignedIntegerVector3",
	AttributeTypeUnsignedIntegerVector4: "UnsignedIntegerVector4",
}

// AttributeTypeFromGLType converts a raw GL type identifier reported by program
// introspection into the corresponding AttributeType.
//
// Parameters:
//   - glType: the raw GL type identifier (e.g. 0x8B51 for FLOAT_VEC3)
//
// Returns:
//   - AttributeType: the matching member of the closed set
//   - error: an error if the identifier names a type outside the attribute set
//     (sampler types, booleans, etc.)
func AttributeTypeFromGLType(glType uint32) (AttributeType, error) {
	for t, id := range glTypeByAttributeType {
		if id == glType {
			return AttributeType(t), nil
		}
	}
	return 0, fmt.Errorf("gl type 0x%04X is not a vertex attribute type", glType)
}

// GLType returns the raw GL type identifier that program introspection reports for
// this attribute type.
//
// Returns:
//   - uint32: the GL enumeration value
func (t AttributeType) GLType() uint32 {
	if int(t) < attributeTypeCount {
		return glTypeByAttributeType[t]
	}
	return 0
}

// String returns the identifier of this attribute type, for diagnostics.
//
// Returns:
//   - string: the name of the type, e.g. "FloatVector3"
func (t AttributeType) String() string {
	if int(t) < attributeTypeCount {
		return attributeTypeNames[t]
	}
	return "AttributeType(invalid)"
}
