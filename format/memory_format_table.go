package format

// formatTable is the per-format descriptor record set, indexed by MemoryFormat tag.
// Every accessor on MemoryFormat is a lookup into this table; the only non-tabular
// format logic in the library is the per-column offset arithmetic in the vertex package.
var formatTable = [memoryFormatCount]formatInfo{
	FloatF32:         {attributeType: AttributeTypeFloat, columns: 1, rows: 1, scalar: ScalarFloat32},
	FloatI8Fixed:     {attributeType: AttributeTypeFloat, columns: 1, rows: 1, scalar: ScalarInt8},
	FloatI8Norm:      {attributeType: AttributeTypeFloat, columns: 1, rows: 1, scalar: ScalarInt8, normalized: true},
	FloatI16Fixed:    {attributeType: AttributeTypeFloat, columns: 1, rows: 1, scalar: ScalarInt16},
	FloatI16Norm:     {attributeType: AttributeTypeFloat, columns: 1, rows: 1, scalar: ScalarInt16, normalized: true},
	FloatU8Fixed:     {attributeType: AttributeTypeFloat, columns: 1, rows: 1, scalar: ScalarUint8},
	FloatU8Norm:      {attributeType: AttributeTypeFloat, columns: 1, rows: 1, scalar: ScalarUint8, normalized: true},
	FloatU16Fixed:    {attributeType: AttributeTypeFloat, columns: 1, rows: 1, scalar: ScalarUint16},
	FloatU16Norm:     {attributeType: AttributeTypeFloat, columns: 1, rows: 1, scalar: ScalarUint16, normalized: true},
	Float2F32:        {attributeType: AttributeTypeFloatVector2, columns: 1, rows: 2, scalar: ScalarFloat32},
	Float2I8Fixed:    {attributeType: AttributeTypeFloatVector2, columns: 1, rows: 2, scalar: ScalarInt8},
	Float2I8Norm:     {attributeType: AttributeTypeFloatVector2, columns: 1, rows: 2, scalar: ScalarInt8, normalized: true},
	Float2I16Fixed:   {attributeType: AttributeTypeFloatVector2, columns: 1, rows: 2, scalar: ScalarInt16},
	Float2I16Norm:    {attributeType: AttributeTypeFloatVector2, columns: 1, rows: 2, scalar: ScalarInt16, normalized: true},
	Float2U8Fixed:    {attributeType: AttributeTypeFloatVector2, columns: 1, rows: 2, scalar: ScalarUint8},
	Float2U8Norm:     {attributeType: AttributeTypeFloatVector2, columns: 1, rows: 2, scalar: ScalarUint8, normalized: true},
	Float2U16Fixed:   {attributeType: AttributeTypeFloatVector2, columns: 1, rows: 2, scalar: ScalarUint16},
	Float2U16Norm:    {attributeType: AttributeTypeFloatVector2, columns: 1, rows: 2, scalar: ScalarUint16, normalized: true},
	Float3F32:        {attributeType: AttributeTypeFloatVector3, columns: 1, rows: 3, scalar: ScalarFloat32},
	Float3I8Fixed:    {attributeType: AttributeTypeFloatVector3, columns: 1, rows: 3, scalar: ScalarInt8},
	Float3I8Norm:     {attributeType: AttributeTypeFloatVector3, columns: 1, rows: 3, scalar: ScalarInt8, normalized: true},
	Float3I16Fixed:   {attributeType: AttributeTypeFloatVector3, columns: 1, rows: 3, scalar: ScalarInt16},
	Float3I16Norm:    {attributeType: AttributeTypeFloatVector3, columns: 1, rows: 3, scalar: ScalarInt16, normalized: true},
	Float3U8Fixed:    {attributeType: AttributeTypeFloatVector3, columns: 1, rows: 3, scalar: ScalarUint8},
	Float3U8Norm:     {attributeType: AttributeTypeFloatVector3, columns: 1, rows: 3, scalar: ScalarUint8, normalized: true},
	Float3U16Fixed:   {attributeType: AttributeTypeFloatVector3, columns: 1, rows: 3, scalar: ScalarUint16},
	Float3U16Norm:    {attributeType: AttributeTypeFloatVector3, columns: 1, rows: 3, scalar: ScalarUint16, normalized: true},
	Float4F32:        {attributeType: AttributeTypeFloatVector4, columns: 1, rows: 4, scalar: ScalarFloat32},
	Float4I8Fixed:    {attributeType: AttributeTypeFloatVector4, columns: 1, rows: 4, scalar: ScalarInt8},
	Float4I8Norm:     {attributeType: AttributeTypeFloatVector4, columns: 1, rows: 4, scalar: ScalarInt8, normalized: true},
	Float4I16Fixed:   {attributeType: AttributeTypeFloatVector4, columns: 1, rows: 4, scalar: ScalarInt16},
	Float4I16Norm:    {attributeType: AttributeTypeFloatVector4, columns: 1, rows: 4, scalar: ScalarInt16, normalized: true},
	Float4U8Fixed:    {attributeType: AttributeTypeFloatVector4, columns: 1, rows: 4, scalar: ScalarUint8},
	Float4U8Norm:     {attributeType: AttributeTypeFloatVector4, columns: 1, rows: 4, scalar: ScalarUint8, normalized: true},
	Float4U16Fixed:   {attributeType: AttributeTypeFloatVector4, columns: 1, rows: 4, scalar: ScalarUint16},
	Float4U16Norm:    {attributeType: AttributeTypeFloatVector4, columns: 1, rows: 4, scalar: ScalarUint16, normalized: true},
	Float2x2F32:      {attributeType: AttributeTypeFloatMatrix2x2, columns: 2, rows: 2, scalar: ScalarFloat32},
	Float2x2I8Fixed:  {attributeType: AttributeTypeFloatMatrix2x2, columns: 2, rows: 2, scalar: ScalarInt8},
	Float2x2I8Norm:   {attributeType: AttributeTypeFloatMatrix2x2, columns: 2, rows: 2, scalar: ScalarInt8, normalized: true},
	Float2x2I16Fixed: {attributeType: AttributeTypeFloatMatrix2x2, columns: 2, rows: 2, scalar: ScalarInt16},
	Float2x2I16Norm:  {attributeType: AttributeTypeFloatMatrix2x2, columns: 2, rows: 2, scalar: ScalarInt16, normalized: true},
	Float2x2U8Fixed:  {attributeType: AttributeTypeFloatMatrix2x2, columns: 2, rows: 2, scalar: ScalarUint8},
	Float2x2U8Norm:   {attributeType: AttributeTypeFloatMatrix2x2, columns: 2, rows: 2, scalar: ScalarUint8, normalized: true},
	Float2x2U16Fixed: {attributeType: AttributeTypeFloatMatrix2x2, columns: 2, rows: 2, scalar: ScalarUint16},
	Float2x2U16Norm:  {attributeType: AttributeTypeFloatMatrix2x2, columns: 2, rows: 2, scalar: ScalarUint16, normalized: true},
	Float2x3F32:      {attributeType: AttributeTypeFloatMatrix2x3, columns: 2, rows: 3, scalar: ScalarFloat32},
	Float2x3I8Fixed:  {attributeType: AttributeTypeFloatMatrix2x3, columns: 2, rows: 3, scalar: ScalarInt8},
	Float2x3I8Norm:   {attributeType: AttributeTypeFloatMatrix2x3, columns: 2, rows: 3, scalar: ScalarInt8, normalized: true},
	Float2x3I16Fixed: {attributeType: AttributeTypeFloatMatrix2x3, columns: 2, rows: 3, scalar: ScalarInt16},
	Float2x3I16Norm:  {attributeType: AttributeTypeFloatMatrix2x3, columns: 2, rows: 3, scalar: ScalarInt16, normalized: true},
	Float2x3U8Fixed:  {attributeType: AttributeTypeFloatMatrix2x3, columns: 2, rows: 3, scalar: ScalarUint8},
	Float2x3U8Norm:   {attributeType: AttributeTypeFloatMatrix2x3, columns: 2, rows: 3, scalar: ScalarUint8, normalized: true},
	Float2x3U16Fixed: {attributeType: AttributeTypeFloatMatrix2x3, columns: 2, rows: 3, scalar: ScalarUint16},
	Float2x3U16Norm:  {attributeType: AttributeTypeFloatMatrix2x3, columns: 2, rows: 3, scalar: ScalarUint16, normalized: true},
	Float2x4F32:      {attributeType: AttributeTypeFloatMatrix2x4, columns: 2, rows: 4, scalar: ScalarFloat32},
	Float2x4I8Fixed:  {attributeType: AttributeTypeFloatMatrix2x4, columns: 2, rows: 4, scalar: ScalarInt8},
	Float2x4I8Norm:   {attributeType: AttributeTypeFloatMatrix2x4, columns: 2, rows: 4, scalar: ScalarInt8, normalized: true},
	Float2x4I16Fixed: {attributeType: AttributeTypeFloatMatrix2x4, columns: 2, rows: 4, scalar: ScalarInt16},
	Float2x4I16Norm:  {attributeType: AttributeTypeFloatMatrix2x4, columns: 2, rows: 4, scalar: ScalarInt16, normalized: true},
	Float2x4U8Fixed:  {attributeType: AttributeTypeFloatMatrix2x4, columns: 2, rows: 4, scalar: ScalarUint8},
	Float2x4U8Norm:   {attributeType: AttributeTypeFloatMatrix2x4, columns: 2, rows: 4, scalar: ScalarUint8, normalized: true},
	Float2x4U16Fixed: {attributeType: AttributeTypeFloatMatrix2x4, columns: 2, rows: 4, scalar: ScalarUint16},
	Float2x4U16Norm:  {attributeType: AttributeTypeFloatMatrix2x4, columns: 2, rows: 4, scalar: ScalarUint16, normalized: true},
	Float3x2F32:      {attributeType: AttributeTypeFloatMatrix3x2, columns: 3, rows: 2, scalar: ScalarFloat32},
	Float3x2I8Fixed:  {attributeType: AttributeTypeFloatMatrix3x2, columns: 3, rows: 2, scalar: ScalarInt8},
	Float3x2I8Norm:   {attributeType: AttributeTypeFloatMatrix3x2, columns: 3, rows: 2, scalar: ScalarInt8, normalized: true},
	Float3x2I16Fixed: {attributeType: AttributeTypeFloatMatrix3x2, columns: 3, rows: 2, scalar: ScalarInt16},
	Float3x2I16Norm:  {attributeType: AttributeTypeFloatMatrix3x2, columns: 3, rows: 2, scalar: ScalarInt16, normalized: true},
	Float3x2U8Fixed:  {attributeType: AttributeTypeFloatMatrix3x2, columns: 3, rows: 2, scalar: ScalarUint8},
	Float3x2U8Norm:   {attributeType: AttributeTypeFloatMatrix3x2, columns: 3, rows: 2, scalar: ScalarUint8, normalized: true},
	Float3x2U16Fixed: {attributeType: AttributeTypeFloatMatrix3x2, columns: 3, rows: 2, scalar: ScalarUint16},
	Float3x2U16Norm:  {attributeType: AttributeTypeFloatMatrix3x2, columns: 3, rows: 2, scalar: ScalarUint16, normalized: true},
	Float3x3F32:      {attributeType: AttributeTypeFloatMatrix3x3, columns: 3, rows: 3, scalar: ScalarFloat32},
	Float3x3I8Fixed:  {attributeType: AttributeTypeFloatMatrix3x3, columns: 3, rows: 3, scalar: ScalarInt8},
	Float3x3I8Norm:   {attributeType: AttributeTypeFloatMatrix3x3, columns: 3, rows: 3, scalar: ScalarInt8, normalized: true},
	Float3x3I16Fixed: {attributeType: AttributeTypeFloatMatrix3x3, columns: 3, rows: 3, scalar: ScalarInt16},
	Float3x3I16Norm:  {attributeType: AttributeTypeFloatMatrix3x3, columns: 3, rows: 3, scalar: ScalarInt16, normalized: true},
	Float3x3U8Fixed:  {attributeType: AttributeTypeFloatMatrix3x3, columns: 3, rows: 3, scalar: ScalarUint8},
	Float3x3U8Norm:   {attributeType: AttributeTypeFloatMatrix3x3, columns: 3, rows: 3, scalar: ScalarUint8, normalized: true},
	Float3x3U16Fixed: {attributeType: AttributeTypeFloatMatrix3x3, columns: 3, rows: 3, scalar: ScalarUint16},
	Float3x3U16Norm:  {attributeType: AttributeTypeFloatMatrix3x3, columns: 3, rows: 3, scalar: ScalarUint16, normalized: true},
	Float3x4F32:      {attributeType: AttributeTypeFloatMatrix3x4, columns: 3, rows: 4, scalar: ScalarFloat32},
	Float3x4I8Fixed:  {attributeType: AttributeTypeFloatMatrix3x4, columns: 3, rows: 4, scalar: ScalarInt8},
	Float3x4I8Norm:   {attributeType: AttributeTypeFloatMatrix3x4, columns: 3, rows: 4, scalar: ScalarInt8, normalized: true},
	Float3x4I16Fixed: {attributeType: AttributeTypeFloatMatrix3x4, columns: 3, rows: 4, scalar: ScalarInt16},
	Float3x4I16Norm:  {attributeType: AttributeTypeFloatMatrix3x4, columns: 3, rows: 4, scalar: ScalarInt16, normalized: true},
	Float3x4U8Fixed:  {attributeType: AttributeTypeFloatMatrix3x4, columns: 3, rows: 4, scalar: ScalarUint8},
	Float3x4U8Norm:   {attributeType: AttributeTypeFloatMatrix3x4, columns: 3, rows: 4, scalar: ScalarUint8, normalized: true},
	Float3x4U16Fixed: {attributeType: AttributeTypeFloatMatrix3x4, columns: 3, rows: 4, scalar: ScalarUint16},
	Float3x4U16Norm:  {attributeType: AttributeTypeFloatMatrix3x4, columns: 3, rows: 4, scalar: ScalarUint16, normalized: true},
	Float4x2F32:      {attributeType: AttributeTypeFloatMatrix4x2, columns: 4, rows: 2, scalar: ScalarFloat32},
	Float4x2I8Fixed:  {attributeType: AttributeTypeFloatMatrix4x2, columns: 4, rows: 2, scalar: ScalarInt8},
	Float4x2I8Norm:   {attributeType: AttributeTypeFloatMatrix4x2, columns: 4, rows: 2, scalar: ScalarInt8, normalized: true},
	Float4x2I16Fixed: {attributeType: AttributeTypeFloatMatrix4x2, columns: 4, rows: 2, scalar: ScalarInt16},
	Float4x2I16Norm:  {attributeType: AttributeTypeFloatMatrix4x2, columns: 4, rows: 2, scalar: ScalarInt16, normalized: true},
	Float4x2U8Fixed:  {attributeType: AttributeTypeFloatMatrix4x2, columns: 4, rows: 2, scalar: ScalarUint8},
	Float4x2U8Norm:   {attributeType: AttributeTypeFloatMatrix4x2, columns: 4, rows: 2, scalar: ScalarUint8, normalized: true},
	Float4x2U16Fixed: {attributeType: AttributeTypeFloatMatrix4x2, columns: 4, rows: 2, scalar: ScalarUint16},
	Float4x2U16Norm:  {attributeType: AttributeTypeFloatMatrix4x2, columns: 4, rows: 2, scalar: ScalarUint16, normalized: true},
	Float4x3F32:      {attributeType: AttributeTypeFloatMatrix4x3, columns: 4, rows: 3, scalar: ScalarFloat32},
	Float4x3I8Fixed:  {attributeType: AttributeTypeFloatMatrix4x3, columns: 4, rows: 3, scalar: ScalarInt8},
	Float4x3I8Norm:   {attributeType: AttributeTypeFloatMatrix4x3, columns: 4, rows: 3, scalar: ScalarInt8, normalized: true},
	Float4x3I16Fixed: {attributeType: AttributeTypeFloatMatrix4x3, columns: 4, rows: 3, scalar: ScalarInt16},
	Float4x3I16Norm:  {attributeType: AttributeTypeFloatMatrix4x3, columns: 4, rows: 3, scalar: ScalarInt16, normalized: true},
	Float4x3U8Fixed:  {attributeType: AttributeTypeFloatMatrix4x3, columns: 4, rows: 3, scalar: ScalarUint8},
	Float4x3U8Norm:   {attributeType: AttributeTypeFloatMatrix4x3, columns: 4, rows: 3, scalar: ScalarUint8, normalized: true},
	Float4x3U16Fixed: {attributeType: AttributeTypeFloatMatrix4x3, columns: 4, rows: 3, scalar: ScalarUint16},
	Float4x3U16Norm:  {attributeType: AttributeTypeFloatMatrix4x3, columns: 4, rows: 3, scalar: ScalarUint16, normalized: true},
	Float4x4F32:      {attributeType: AttributeTypeFloatMatrix4x4, columns: 4, rows: 4, scalar: ScalarFloat32},
	Float4x4I8Fixed:  {attributeType: AttributeTypeFloatMatrix4x4, columns: 4, rows: 4, scalar: ScalarInt8},
	Float4x4I8Norm:   {attributeType: AttributeTypeFloatMatrix4x4, columns: 4, rows: 4, scalar: ScalarInt8, normalized: true},
	Float4x4I16Fixed: {attributeType: AttributeTypeFloatMatrix4x4, columns: 4, rows: 4, scalar: ScalarInt16},
	Float4x4I16Norm:  {attributeType: AttributeTypeFloatMatrix4x4, columns: 4, rows: 4, scalar: ScalarInt16, normalized: true},
	Float4x4U8Fixed:  {attributeType: AttributeTypeFloatMatrix4x4, columns: 4, rows: 4, scalar: ScalarUint8},
	Float4x4U8Norm:   {attributeType: AttributeTypeFloatMatrix4x4, columns: 4, rows: 4, scalar: ScalarUint8, normalized: true},
	Float4x4U16Fixed: {attributeType: AttributeTypeFloatMatrix4x4, columns: 4, rows: 4, scalar: ScalarUint16},
	Float4x4U16Norm:  {attributeType: AttributeTypeFloatMatrix4x4, columns: 4, rows: 4, scalar: ScalarUint16, normalized: true},
	IntegerI8:        {attributeType: AttributeTypeInteger, columns: 1, rows: 1, scalar: ScalarInt8, integer: true},
	IntegerI16:       {attributeType: AttributeTypeInteger, columns: 1, rows: 1, scalar: ScalarInt16, integer: true},
	IntegerI32:       {attributeType: AttributeTypeInteger, columns: 1, rows: 1, scalar: ScalarInt32, integer: true},
	IntegerU8:        {attributeType: AttributeTypeUnsignedInteger, columns: 1, rows: 1, scalar: ScalarUint8, integer: true},
	IntegerU16:       {attributeType: AttributeTypeUnsignedInteger, columns: 1, rows: 1, scalar: ScalarUint16, integer: true},
	IntegerU32:       {attributeType: AttributeTypeUnsignedInteger, columns: 1, rows: 1, scalar: ScalarUint32, integer: true},
	Integer2I8:       {attributeType: AttributeTypeIntegerVector2, columns: 1, rows: 2, scalar: ScalarInt8, integer: true},
	Integer2I16:      {attributeType: AttributeTypeIntegerVector2, columns: 1, rows: 2, scalar: ScalarInt16, integer: true},
	Integer2I32:      {attributeType: AttributeTypeIntegerVector2, columns: 1, rows: 2, scalar: ScalarInt32, integer: true},
	Integer2U8:       {attributeType: AttributeTypeUnsignedIntegerVector2, columns: 1, rows: 2, scalar: ScalarUint8, integer: true},
	Integer2U16:      {attributeType: AttributeTypeUnsignedIntegerVector2, columns: 1, rows: 2, scalar: ScalarUint16, integer: true},
	Integer2U32:      {attributeType: AttributeTypeUnsignedIntegerVector2, columns: 1, rows: 2, scalar: ScalarUint32, integer: true},
	Integer3I8:       {attributeType: AttributeTypeIntegerVector3, columns: 1, rows: 3, scalar: ScalarInt8, integer: true},
	Integer3I16:      {attributeType: AttributeTypeIntegerVector3, columns: 1, rows: 3, scalar: ScalarInt16, integer: true},
	Integer3I32:      {attributeType: AttributeTypeIntegerVector3, columns: 1, rows: 3, scalar: ScalarInt32, integer: true},
	Integer3U8:       {attributeType: AttributeTypeUnsignedIntegerVector3, columns: 1, rows: 3, scalar: ScalarUint8, integer: true},
	Integer3U16:      {attributeType: AttributeTypeUnsignedIntegerVector3, columns: 1, rows: 3, scalar: ScalarUint16, integer: true},
	Integer3U32:      {attributeType: AttributeTypeUnsignedIntegerVector3, columns: 1, rows: 3, scalar: ScalarUint32, integer: true},
	Integer4I8:       {attributeType: AttributeTypeIntegerVector4, columns: 1, rows: 4, scalar: ScalarInt8, integer: true},
	Integer4I16:      {attributeType: AttributeTypeIntegerVector4, columns: 1, rows: 4, scalar: ScalarInt16, integer: true},
	Integer4I32:      {attributeType: AttributeTypeIntegerVector4, columns: 1, rows: 4, scalar: ScalarInt32, integer: true},
	Integer4U8:       {attributeType: AttributeTypeUnsignedIntegerVector4, columns: 1, rows: 4, scalar: ScalarUint8, integer: true},
	Integer4U16:      {attributeType: AttributeTypeUnsignedIntegerVector4, columns: 1, rows: 4, scalar: ScalarUint16, integer: true},
	Integer4U32:      {attributeType: AttributeTypeUnsignedIntegerVector4, columns: 1, rows: 4, scalar: ScalarUint32, integer: true},
}
